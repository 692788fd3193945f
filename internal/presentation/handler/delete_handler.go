package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clipshelf/internal/application/usecase/abstraction"
	"clipshelf/internal/presentation"
	"clipshelf/pkg/logger"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// Handle handles DELETE /contents/:contentId requests.
func (h *DeleteHandler) Handle(c echo.Context) error {
	contentID := c.Param(presentation.ContentIDParam)
	if contentID == "" {
		return badRequest(c, "missing content id")
	}

	callerID, _ := callerIdentity(c)

	if err := h.deleter.DeleteContent(c.Request().Context(), contentID, callerID); err != nil {
		logger.Error("content deletion failed", "content_id", contentID, "caller", callerID, "err", err)

		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
