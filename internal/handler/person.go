package handler

import (
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/labstack/echo/v4"
)

// PersonHandler serves the Person resource.
type PersonHandler struct {
	Handler
	service *service.PersonService
}

func NewPersonHandler(s *server.Server, personService *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
		service: personService,
	}
}

// ListPersons handles GET /, returning every person by ascending id.
func (h *PersonHandler) ListPersons(c echo.Context, req *ListPersonsRequest) ([]model.Person, error) {
	return h.service.List(c.Request().Context())
}

// GetPerson handles GET /{token}.
func (h *PersonHandler) GetPerson(c echo.Context, req *PersonTokenRequest) (*model.Person, error) {
	return h.service.Get(c.Request().Context(), middleware.GetLogger(c), req.Token)
}

// CreatePerson handles POST /.
func (h *PersonHandler) CreatePerson(c echo.Context, req *PersonNameRequest) (*model.Person, error) {
	return h.service.Create(c.Request().Context(), middleware.GetLogger(c), req.Name)
}

// UpdatePerson handles PUT /{token}.
func (h *PersonHandler) UpdatePerson(c echo.Context, req *PersonNameRequest) (*model.Person, error) {
	return h.service.Update(c.Request().Context(), middleware.GetLogger(c), req.Token, req.Name)
}

// DeletePerson handles DELETE /{token}.
func (h *PersonHandler) DeletePerson(c echo.Context, req *PersonTokenRequest) error {
	return h.service.Delete(c.Request().Context(), middleware.GetLogger(c), req.Token)
}
