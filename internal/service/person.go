package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/lib/job"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/rs/zerolog"
)

// Error codes returned by person lookups.
const (
	CodePersonNotFound  = "PERSON_NOT_FOUND"
	CodeInvalidPersonID = "INVALID_PERSON_ID"
)

// Messages returned by person lookups.
const (
	MessagePersonNotFound  = "Person not found"
	MessageInvalidPersonID = "ID must be a positive integer or the name of an existing person"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// EventPublisher receives completed person mutations. *job.JobService
// satisfies it.
type EventPublisher interface {
	PublishPersonEvent(ctx context.Context, event job.PersonEvent, person model.Person) error
}

// ResolvedBy tags which key a token matched.
type ResolvedBy string

const (
	ResolvedByName ResolvedBy = "name"
	ResolvedByID   ResolvedBy = "id"
)

// Resolution is the outcome of resolving a path token to a person.
type Resolution struct {
	Person *model.Person
	By     ResolvedBy
}

type PersonService struct {
	server    *server.Server
	repo      repository.PersonRepository
	publisher EventPublisher
}

// NewPersonService creates the service. publisher may be nil, in which
// case no person events are emitted.
func NewPersonService(s *server.Server, repo repository.PersonRepository, publisher EventPublisher) *PersonService {
	return &PersonService{
		server:    s,
		repo:      repo,
		publisher: publisher,
	}
}

// ParseID reports whether token is a positive decimal integer id.
func ParseID(token string) (int64, bool) {
	if !digitsRe.MatchString(token) {
		return 0, false
	}

	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// StorableName reports whether name can be stored and looked up: non-empty,
// valid UTF-8 and free of NUL bytes, which Postgres text rejects.
func StorableName(name string) bool {
	return name != "" && utf8.ValidString(name) && !strings.ContainsRune(name, 0)
}

// SanitizeName HTML-escapes a name before it is stored.
func SanitizeName(name string) string {
	return html.EscapeString(name)
}

// List returns every person ordered by id.
func (s *PersonService) List(ctx context.Context) ([]model.Person, error) {
	return s.repo.List(ctx)
}

// Resolve looks token up as a name first, then as a positive integer id.
// Tokens that could never be stored as a name skip the name lookup.
func (s *PersonService) Resolve(ctx context.Context, token string) (*Resolution, error) {
	if StorableName(token) {
		person, err := s.repo.GetByName(ctx, token)
		switch {
		case err == nil:
			return &Resolution{Person: person, By: ResolvedByName}, nil
		case !errors.Is(err, repository.ErrPersonNotFound):
			return nil, fmt.Errorf("failed to look up person by name: %w", err)
		}
	}

	id, ok := ParseID(token)
	if !ok {
		return nil, errs.NewNotFoundError(MessageInvalidPersonID, true, errs.Code(CodeInvalidPersonID))
	}

	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, errs.NewNotFoundError(MessagePersonNotFound, true, errs.Code(CodePersonNotFound))
		}
		return nil, fmt.Errorf("failed to look up person by id: %w", err)
	}

	return &Resolution{Person: person, By: ResolvedByID}, nil
}

// Get resolves token and returns the matching person.
func (s *PersonService) Get(ctx context.Context, logger *zerolog.Logger, token string) (*model.Person, error) {
	resolution, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("token", token).
		Str("resolved_by", string(resolution.By)).
		Int64("person_id", resolution.Person.ID).
		Msg("person resolved")

	return resolution.Person, nil
}

// Create stores a new person with the escaped name.
func (s *PersonService) Create(ctx context.Context, logger *zerolog.Logger, name string) (*model.Person, error) {
	person, err := s.repo.Create(ctx, SanitizeName(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	logger.Info().Int64("person_id", person.ID).Msg("person created")
	s.publish(ctx, logger, job.PersonCreated, *person)

	return person, nil
}

// Update resolves token and overwrites the person's name with the escaped
// value.
func (s *PersonService) Update(ctx context.Context, logger *zerolog.Logger, token, name string) (*model.Person, error) {
	resolution, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	person, err := s.repo.UpdateName(ctx, resolution.Person.ID, SanitizeName(name))
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			// Deleted between resolve and update.
			return nil, errs.NewNotFoundError(MessagePersonNotFound, true, errs.Code(CodePersonNotFound))
		}
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	logger.Info().
		Int64("person_id", person.ID).
		Str("resolved_by", string(resolution.By)).
		Msg("person updated")
	s.publish(ctx, logger, job.PersonUpdated, *person)

	return person, nil
}

// Delete resolves token and removes the person permanently.
func (s *PersonService) Delete(ctx context.Context, logger *zerolog.Logger, token string) error {
	resolution, err := s.Resolve(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, resolution.Person.ID); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return errs.NewNotFoundError(MessagePersonNotFound, true, errs.Code(CodePersonNotFound))
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}

	logger.Info().
		Int64("person_id", resolution.Person.ID).
		Str("resolved_by", string(resolution.By)).
		Msg("person deleted")
	s.publish(ctx, logger, job.PersonDeleted, *resolution.Person)

	return nil
}

// publish emits a person event. Failures are logged and never reach the
// client.
func (s *PersonService) publish(ctx context.Context, logger *zerolog.Logger, event job.PersonEvent, person model.Person) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishPersonEvent(ctx, event, person); err != nil {
		logger.Warn().Err(err).Str("event", string(event)).Msg("failed to publish person event")
	}
}
