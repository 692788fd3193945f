package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/presentation"
)

// callerIdentity reads the identity the auth middleware stored on the
// request context.
func callerIdentity(c echo.Context) (string, string) {
	callerID, _ := c.Get(presentation.CallerIDKey).(string)
	callerEmail, _ := c.Get(presentation.CallerEmailKey).(string)

	return callerID, callerEmail
}

// writeError maps a failure to its status code and a short human-readable
// message.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
		c.Response().Header().Set(presentation.ReasonTag, appErr.Message)

		return c.JSON(status, map[string]string{"error": appErr.Message})
	}

	return c.JSON(status, map[string]string{"error": "request failed, please try again later"})
}

func badRequest(c echo.Context, message string) error {
	c.Response().Header().Set(presentation.ReasonTag, message)

	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}
