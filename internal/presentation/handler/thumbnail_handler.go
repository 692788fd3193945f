package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clipshelf/internal/application/usecase/abstraction"
	"clipshelf/internal/presentation"
	"clipshelf/pkg/logger"
)

type ThumbnailHandler struct {
	attacher abstraction.ThumbnailAttacher
}

func NewThumbnailHandler(attacher abstraction.ThumbnailAttacher) *ThumbnailHandler {
	return &ThumbnailHandler{
		attacher: attacher,
	}
}

// Handle handles PUT /contents/:contentId/thumbnail requests with a
// "thumbnail" image file part.
func (h *ThumbnailHandler) Handle(c echo.Context) error {
	contentID := c.Param(presentation.ContentIDParam)
	if contentID == "" {
		return badRequest(c, "missing content id")
	}

	file, header, detectedType, err := openMediaPart(c, "thumbnail", "image/")
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer file.Close()

	view, err := h.attacher.AttachThumbnail(c.Request().Context(), contentID, file, header.Size, detectedType)
	if err != nil {
		logger.Error("thumbnail attach failed", "content_id", contentID, "err", err)

		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}
