package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{name: "bad request default code", err: NewBadRequestError("bad", false, nil, nil, nil), status: http.StatusBadRequest, code: "BAD_REQUEST"},
		{name: "bad request custom code", err: NewBadRequestError("bad", true, Code("MISSING_NAME"), nil, nil), status: http.StatusBadRequest, code: "MISSING_NAME"},
		{name: "not found", err: NewNotFoundError("nope", false, nil), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "unauthorized", err: NewUnauthorizedError("who", false), status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "forbidden", err: NewForbiddenError("no", false), status: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "too many requests", err: NewTooManyRequestsError("slow down"), status: http.StatusTooManyRequests, code: "TOO_MANY_REQUESTS"},
		{name: "internal", err: NewInternalServerError(), status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("resolve: %w", NewNotFoundError("Person not found", true, Code("PERSON_NOT_FOUND")))

	assert.True(t, errors.Is(err, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "PERSON_NOT_FOUND", httpErr.Code)
}

func TestWithMessageCopies(t *testing.T) {
	original := NewBadRequestError("first", false, nil, nil, nil)
	changed := original.WithMessage("second")

	assert.Equal(t, "first", original.Message)
	assert.Equal(t, "second", changed.Message)
	assert.Equal(t, original.Code, changed.Code)
}
