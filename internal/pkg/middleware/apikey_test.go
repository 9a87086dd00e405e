package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runAPIKeyMiddleware(t *testing.T, headerValue string, validKeys ...string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/internal/users/7/greenscore", nil)
	if headerValue != "" {
		req.Header.Set(APIKeyHeader, headerValue)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	next := func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	}

	err := ValidateAPIKey(validKeys...)(next)(c)
	assert.NoError(t, err)
	return rec, reached
}

func TestValidateAPIKey_ValidKey(t *testing.T) {
	rec, reached := runAPIKeyMiddleware(t, "secret-key", "secret-key")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestValidateAPIKey_MissingKey(t *testing.T) {
	rec, reached := runAPIKeyMiddleware(t, "", "secret-key")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestValidateAPIKey_WrongKey(t *testing.T) {
	rec, reached := runAPIKeyMiddleware(t, "wrong-key", "secret-key")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestValidateAPIKey_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	rec, reached := runAPIKeyMiddleware(t, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
