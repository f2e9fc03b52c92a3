// Package repository handles all interactions with the database.
//
// It contains the SQL for every persisted entity and hides which driver
// is in use from the service layer.
package repository

import (
	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/server"
)

// Repositories groups every repository instance.
type Repositories struct {
	Person PersonRepository
}

// NewRepositories builds the repositories for the store the server opened.
func NewRepositories(s *server.Server) *Repositories {
	var person PersonRepository
	if s.DB.Driver == config.DriverSQLite {
		person = NewSQLitePersonRepository(s.DB.SQL)
	} else {
		person = NewPostgresPersonRepository(s.DB.Pool)
	}

	return &Repositories{
		Person: person,
	}
}
