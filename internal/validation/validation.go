// Package validation binds and validates request payloads.
//
// Struct-tag rules are enforced with go-playground/validator and failures
// are turned into errs.HTTPError values the client can act on.
package validation

import (
	"errors"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Struct runs the struct-tag rules of v.
func Struct(v any) error {
	return validate.Struct(v)
}

// Validatable is implemented by request payloads that validate themselves.
type Validatable interface {
	Validate() error
}

// Binder is implemented by payloads that need to read the request
// themselves instead of using Echo's default binder.
type Binder interface {
	Bind(c echo.Context) error
}

// BindAndValidate binds the request into payload and validates it.
//
// Bind and validation failures are returned as 400 *errs.HTTPError values;
// payloads may also return their own *errs.HTTPError.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return err
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func bind(c echo.Context, payload Validatable) error {
	if binder, ok := payload.(Binder); ok {
		return binder.Bind(c)
	}

	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok {
				return errs.NewBadRequestError(msg, false, nil, nil, nil)
			}
		}
		return errs.NewBadRequestError("Invalid request", false, nil, nil, nil)
	}

	return nil
}
