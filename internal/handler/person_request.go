package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Error codes and messages for person payloads.
const (
	CodeInvalidJSON = "INVALID_JSON"
	CodeMissingName = "MISSING_NAME"
	CodeInvalidName = "INVALID_NAME"

	MessageInvalidJSON = "Not a JSON"
	MessageMissingName = "Missing name"
	MessageInvalidName = "Name must be a non-empty string"
)

// pathToken returns the {token} path segment decoded exactly once. Echo
// routes on URL.RawPath when it is set, leaving params escaped; otherwise
// it routes on the already decoded URL.Path.
func pathToken(c echo.Context) string {
	token := c.Param("token")
	if c.Request().URL.RawPath == "" {
		return token
	}
	if unescaped, err := url.PathUnescape(token); err == nil {
		return unescaped
	}
	return token
}

// ListPersonsRequest carries no input.
type ListPersonsRequest struct{}

func (r *ListPersonsRequest) Bind(c echo.Context) error { return nil }

func (r *ListPersonsRequest) Validate() error { return nil }

// PersonTokenRequest identifies a person by name or id.
type PersonTokenRequest struct {
	Token string `validate:"required"`
}

func (r *PersonTokenRequest) Bind(c echo.Context) error {
	r.Token = pathToken(c)
	return nil
}

func (r *PersonTokenRequest) Validate() error {
	return validation.Struct(r)
}

// PersonNameRequest is the body of create and update. Token is only set
// on update.
type PersonNameRequest struct {
	Token string
	Name  string `validate:"required"`

	bodyErr *errs.HTTPError
}

// Bind reads the JSON body itself so that a missing body, a missing name
// and a name of the wrong type are reported separately.
func (r *PersonNameRequest) Bind(c echo.Context) error {
	r.Token = pathToken(c)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		r.bodyErr = errs.NewBadRequestError(MessageInvalidJSON, true, errs.Code(CodeInvalidJSON), nil, nil)
		return nil
	}

	r.Name, r.bodyErr = parseName(body)
	return nil
}

func (r *PersonNameRequest) Validate() error {
	if r.bodyErr != nil {
		return r.bodyErr
	}
	return validation.Struct(r)
}

func parseName(body []byte) (string, *errs.HTTPError) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", errs.NewBadRequestError(MessageInvalidJSON, true, errs.Code(CodeInvalidJSON), nil, nil)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return "", errs.NewBadRequestError(MessageInvalidJSON, true, errs.Code(CodeInvalidJSON), nil, nil)
	}

	raw, ok := fields["name"]
	if !ok {
		return "", errs.NewBadRequestError(MessageMissingName, true, errs.Code(CodeMissingName), nil, nil)
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil || !service.StorableName(name) {
		return "", errs.NewBadRequestError(MessageInvalidName, true, errs.Code(CodeInvalidName), nil, nil)
	}

	return name, nil
}
