// Package router builds the Echo instance: global middleware in order, the
// system routes and the versioned API groups.
package router

import (
	"io/fs"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter returns the fully wired HTTP handler. assets holds the
// documentation files served under /static and /docs.
func NewRouter(s *server.Server, services *service.Services, assets fs.FS) *echo.Echo {
	h := handler.NewHandlers(s, services, assets)
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// /api/v1/persons/ and /api/v1/persons are the same resource.
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.BodyLimit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limiter())
	}

	registerSystemRoutes(router, h, assets)

	v1 := router.Group("/api/v1")
	registerPersonRoutes(v1, h.Person, middlewares, services.Auth.Enabled())

	return router
}
