package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	userID := uuid.New()

	parsed, err := ParseToken(testSecret, signToken(t, userID))
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseToken_WrongSecret(t *testing.T) {
	_, err := ParseToken("another-secret-another-secret-00", signToken(t, uuid.New()))
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	e := echo.New()
	userID := uuid.New()

	handler := func(c echo.Context) error {
		got, err := GetUserID(c)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, userID))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Middleware(testSecret)(handler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()

	handler := func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Middleware(testSecret)(handler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
