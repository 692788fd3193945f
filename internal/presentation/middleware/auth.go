// Package middleware carries the identity boundary. Authentication itself
// lives in a managed provider; this middleware only verifies the provider's
// token signature and extracts the caller's stable identity and display
// email for ownership checks downstream.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"clipshelf/internal/presentation"
)

func IdentityMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if err := validateAuthHeader(authHeader); err != nil {
				return ctx.String(http.StatusUnauthorized, err.Error())
			}

			callerID, callerEmail, err := parseIdentity(authHeader, secret)
			if err != nil {
				return ctx.String(http.StatusUnauthorized, err.Error())
			}

			ctx.Set(presentation.CallerIDKey, callerID)
			ctx.Set(presentation.CallerEmailKey, callerEmail)

			return next(ctx)
		}
	}
}

func validateAuthHeader(authHeader string) error {
	if authHeader == "" {
		return fmt.Errorf("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return fmt.Errorf("missing Bearer header prefix")
	}

	return nil
}

func parseIdentity(authHeader, secret string) (string, string, error) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return []byte(secret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("token parse failed: %s", err.Error())
	}
	if !token.Valid {
		return "", "", fmt.Errorf("invalid token")
	}

	callerID, err := claims.GetSubject()
	if err != nil || callerID == "" {
		return "", "", fmt.Errorf("token carries no subject")
	}

	// Email is display-only; a token without one is still usable.
	callerEmail, _ := claims["email"].(string)

	return callerID, callerEmail, nil
}
