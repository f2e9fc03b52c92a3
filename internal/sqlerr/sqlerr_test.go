package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlite3 "modernc.org/sqlite/lib"
)

func TestMapCode(t *testing.T) {
	tests := map[string]Code{
		"23502": NotNullViolation,
		"23503": ForeignKeyViolation,
		"23505": UniqueViolation,
		"23514": CheckViolation,
		"23P01": ExclusionViolation,
		"53300": TooManyConnections,
		"57014": QueryCanceled,
		"42P01": Other,
	}

	for state, want := range tests {
		assert.Equal(t, want, MapCode(state), state)
	}
}

func TestMapSQLiteCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, mapSQLiteCode(sqlite3.SQLITE_CONSTRAINT_UNIQUE, ""))
	assert.Equal(t, NotNullViolation, mapSQLiteCode(sqlite3.SQLITE_CONSTRAINT_NOTNULL, ""))
	assert.Equal(t, UniqueViolation, mapSQLiteCode(sqlite3.SQLITE_CONSTRAINT, "UNIQUE constraint failed: persons.name"))
	assert.Equal(t, Other, mapSQLiteCode(sqlite3.SQLITE_BUSY, "database is locked"))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "persons_name_key"`,
		TableName:      "persons",
		ConstraintName: "persons_name_key",
	}

	err := HandleError(fmt.Errorf("failed to create person: %w", pgErr))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PERSON_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Person with this Name already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "persons",
		ColumnName: "name",
	})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "PERSON_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Name is required", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestHandleErrorNoRows(t *testing.T) {
	for _, cause := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		err := HandleError(fmt.Errorf("lookup: %w", cause))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Person not found", true, errs.Code("PERSON_NOT_FOUND"))
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(errors.New("connection reset"))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "name", extractColumnForUniqueViolation("persons_name_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", ConvertPgError(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
