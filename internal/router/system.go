package router

import (
	"io/fs"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that are not part of the API:
// health, docs UI and the static doc assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, assets fs.FS) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", assets)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
