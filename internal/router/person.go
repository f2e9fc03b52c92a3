package router

import (
	"net/http"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerPersonRoutes mounts /persons. Reads are public; writes require a
// Clerk session when auth is enabled.
func registerPersonRoutes(g *echo.Group, h *handler.PersonHandler, m *middleware.Middlewares, requireAuth bool) {
	persons := g.Group("/persons")

	var writeGuards []echo.MiddlewareFunc
	if requireAuth {
		writeGuards = append(writeGuards, m.Auth.RequireAuth)
	}

	persons.GET("", handler.Handle(
		h.Handler,
		h.ListPersons,
		http.StatusOK,
		func() *handler.ListPersonsRequest { return &handler.ListPersonsRequest{} },
	))

	persons.GET("/:token", handler.Handle(
		h.Handler,
		h.GetPerson,
		http.StatusOK,
		func() *handler.PersonTokenRequest { return &handler.PersonTokenRequest{} },
	))

	persons.POST("", handler.Handle(
		h.Handler,
		h.CreatePerson,
		http.StatusCreated,
		func() *handler.PersonNameRequest { return &handler.PersonNameRequest{} },
	), writeGuards...)

	persons.PUT("/:token", handler.Handle(
		h.Handler,
		h.UpdatePerson,
		http.StatusOK,
		func() *handler.PersonNameRequest { return &handler.PersonNameRequest{} },
	), writeGuards...)

	persons.DELETE("/:token", handler.HandleNoContent(
		h.Handler,
		h.DeletePerson,
		http.StatusNoContent,
		func() *handler.PersonTokenRequest { return &handler.PersonTokenRequest{} },
	), writeGuards...)
}
