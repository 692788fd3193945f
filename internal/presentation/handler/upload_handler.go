package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"clipshelf/internal/application/usecase/abstraction"
	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
	"clipshelf/pkg/logger"
	"clipshelf/pkg/utils"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /contents requests: a multipart form with a "video"
// file part and the metadata fields of the draft.
func (h *UploadHandler) Handle(c echo.Context) error {
	callerID, _ := callerIdentity(c)

	draft, err := draftFromForm(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	file, header, detectedType, err := openMediaPart(c, "video", "video/")
	if err != nil {
		return badRequest(c, err.Error())
	}
	defer file.Close()

	view, err := h.uploader.Upload(c.Request().Context(), file, header.Size, detectedType, *draft, callerID)
	if err != nil {
		logger.Error("upload failed", "caller", callerID, "err", err)

		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, view)
}

func draftFromForm(c echo.Context) (*dto.ContentDraft, error) {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return nil, errors.New("title must not be empty")
	}

	durationLabel := c.FormValue("duration_label")
	if durationLabel != "" && !utils.ValidDurationLabel(durationLabel) {
		return nil, errors.New("duration_label must be MM:SS")
	}

	visibility := model.Visibility(c.FormValue("visibility"))
	switch visibility {
	case "":
		visibility = model.VisibilityPublic
	case model.VisibilityPublic, model.VisibilityPrivate:
	default:
		return nil, errors.New("visibility must be public or private")
	}

	return &dto.ContentDraft{
		Title:         title,
		Description:   c.FormValue("description"),
		Category:      c.FormValue("category"),
		DurationLabel: durationLabel,
		Visibility:    visibility,
	}, nil
}

// openMediaPart opens the named file part and sniffs its MIME type, which
// must match the wanted prefix ("video/" or "image/"). The reader is
// rewound after sniffing.
func openMediaPart(c echo.Context, field, wantPrefix string) (multipart.File, *multipart.FileHeader, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, "", errors.New("missing "+field+" file")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, "", errors.New("unreadable "+field+" file")
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		file.Close()

		return nil, nil, "", errors.New("unreadable "+field+" file")
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()

		return nil, nil, "", errors.New("unreadable "+field+" file")
	}

	detectedType := detected.String()
	if !strings.HasPrefix(detectedType, wantPrefix) {
		file.Close()

		return nil, nil, "", fmt.Errorf("invalid file type: detected %s, expected %s*", detectedType, wantPrefix)
	}

	return file, header, detectedType, nil
}
