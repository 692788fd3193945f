package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clipshelf/internal/application/usecase/abstraction"
	"clipshelf/pkg/logger"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// Handle handles GET /contents requests, returning every item visible to
// the caller, newest first, with fresh signed URLs.
func (h *ListHandler) Handle(c echo.Context) error {
	callerID, _ := callerIdentity(c)

	views, err := h.lister.ListVisible(c.Request().Context(), callerID)
	if err != nil {
		logger.Error("content listing failed", "caller", callerID, "err", err)

		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, views)
}
