package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/person-api/internal/model"
)

// ErrPersonNotFound is returned when no row matches the lookup key.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository persists Person records.
//
// Lookups return ErrPersonNotFound when nothing matches. Constraint
// violations are returned as driver errors for sqlerr to map.
type PersonRepository interface {
	// List returns every person ordered by ascending id.
	List(ctx context.Context) ([]model.Person, error)
	GetByID(ctx context.Context, id int64) (*model.Person, error)
	GetByName(ctx context.Context, name string) (*model.Person, error)
	Create(ctx context.Context, name string) (*model.Person, error)
	UpdateName(ctx context.Context, id int64, name string) (*model.Person, error)
	Delete(ctx context.Context, id int64) error
}
