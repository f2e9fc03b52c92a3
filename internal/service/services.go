// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated input from handlers, applies the domain rules and calls the
// repositories.
package service

import (
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

type Services struct {
	Auth   *AuthService
	Person *PersonService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var publisher EventPublisher
	if s.Job != nil {
		publisher = s.Job
	}

	return &Services{
		Auth:   NewAuthService(s),
		Person: NewPersonService(s, repos.Person, publisher),
	}, nil
}
