package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipshelf/internal/presentation"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(presentation.AuthKey, authHeader)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	handler := IdentityMiddleware(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))

	return rec, ctx
}

func TestIdentityMiddlewareAcceptsValidToken(t *testing.T) {
	t.Parallel()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "user-1@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	rec, ctx := invoke(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", ctx.Get(presentation.CallerIDKey))
	assert.Equal(t, "user-1@example.com", ctx.Get(presentation.CallerEmailKey))
}

func TestIdentityMiddlewareRejections(t *testing.T) {
	t.Parallel()

	expired := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{"sub": "user-1"})
	noSubject := signToken(t, testSecret, jwt.MapClaims{"email": "x@example.com"})

	tests := []struct {
		name       string
		authHeader string
	}{
		{"missing header", ""},
		{"missing bearer prefix", "Token abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong signing key", "Bearer " + wrongKey},
		{"expired token", "Bearer " + expired},
		{"no subject claim", "Bearer " + noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, ctx := invoke(t, tt.authHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, ctx.Get(presentation.CallerIDKey))
		})
	}
}
