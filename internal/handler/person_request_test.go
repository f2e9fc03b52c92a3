package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body, token string) echo.Context {
	req := httptest.NewRequest(method, "/api/v1/persons", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := echo.New().NewContext(req, httptest.NewRecorder())
	if token != "" {
		c.SetParamNames("token")
		c.SetParamValues(token)
	}
	return c
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
		wantCode string
	}{
		{name: "valid", body: `{"name": "Alice"}`, wantName: "Alice"},
		{name: "extra fields ignored", body: `{"name": "Alice", "age": 3}`, wantName: "Alice"},
		{name: "whitespace body", body: "  \n", wantCode: CodeInvalidJSON},
		{name: "string body", body: `"Alice"`, wantCode: CodeInvalidJSON},
		{name: "truncated", body: `{"name": "Al`, wantCode: CodeInvalidJSON},
		{name: "missing", body: `{}`, wantCode: CodeMissingName},
		{name: "bool", body: `{"name": true}`, wantCode: CodeInvalidName},
		{name: "object", body: `{"name": {"first": "A"}}`, wantCode: CodeInvalidName},
		{name: "empty", body: `{"name": ""}`, wantCode: CodeInvalidName},
		{name: "nul byte", body: `{"name": "a\u0000b"}`, wantCode: CodeInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, httpErr := parseName([]byte(tt.body))
			if tt.wantCode == "" {
				require.Nil(t, httpErr)
				assert.Equal(t, tt.wantName, name)
				return
			}

			require.NotNil(t, httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestPersonNameRequestBindAndValidate(t *testing.T) {
	c := newContext(http.MethodPut, `{"name": "Bob"}`, "Alice Smith")

	req := &PersonNameRequest{}
	require.NoError(t, validation.BindAndValidate(c, req))
	assert.Equal(t, "Alice Smith", req.Token)
	assert.Equal(t, "Bob", req.Name)
}

func TestPathTokenDecodedOnce(t *testing.T) {
	// Routed on the decoded path: the param is final.
	c := newContext(http.MethodGet, "", "a%41")
	assert.Equal(t, "a%41", pathToken(c))

	// Routed on the raw path: the param is still escaped.
	c = newContext(http.MethodGet, "", "a%2Fb")
	c.Request().URL.RawPath = "/api/v1/persons/a%2Fb"
	assert.Equal(t, "a/b", pathToken(c))
}

func TestPersonNameRequestReportsBodyError(t *testing.T) {
	c := newContext(http.MethodPost, `{"name": 123}`, "")

	err := validation.BindAndValidate(c, &PersonNameRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, CodeInvalidName, httpErr.Code)
	assert.Equal(t, MessageInvalidName, httpErr.Message)
}

func TestPersonTokenRequest(t *testing.T) {
	c := newContext(http.MethodGet, "", "42")

	req := &PersonTokenRequest{}
	require.NoError(t, validation.BindAndValidate(c, req))
	assert.Equal(t, "42", req.Token)
}
