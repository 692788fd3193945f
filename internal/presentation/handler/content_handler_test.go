package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
	"clipshelf/internal/presentation"
)

// mp4Header carries the ftyp box that MIME sniffing keys on.
var mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom" +
	"\x00\x00\x00\x08free")

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR" +
	"\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeContentService struct {
	view *dto.ContentView
	err  error

	uploadedDraft dto.ContentDraft
	uploadedOwner string
	uploadedType  string
	uploadedSize  int64

	attachedContentID string

	deletedContentID string
	deletedCallerID  string

	listViews []dto.ContentView
}

func (f *fakeContentService) Upload(_ context.Context, body io.Reader, size int64,
	contentType string, draft dto.ContentDraft, ownerID string,
) (*dto.ContentView, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return nil, err
	}

	f.uploadedDraft = draft
	f.uploadedOwner = ownerID
	f.uploadedType = contentType
	f.uploadedSize = size

	return f.view, f.err
}

func (f *fakeContentService) AttachThumbnail(_ context.Context, contentID string,
	_ io.Reader, _ int64, _ string,
) (*dto.ContentView, error) {
	f.attachedContentID = contentID

	return f.view, f.err
}

func (f *fakeContentService) ListVisible(_ context.Context, _ string) ([]dto.ContentView, error) {
	return f.listViews, f.err
}

func (f *fakeContentService) DeleteContent(_ context.Context, contentID, callerID string) error {
	f.deletedContentID = contentID
	f.deletedCallerID = callerID

	return f.err
}

// multipartBody builds a form with one file part plus metadata fields.
func multipartBody(t *testing.T, field, filename string, payload []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func newUploadContext(t *testing.T, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/contents", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(presentation.CallerIDKey, "owner-1")
	ctx.Set(presentation.CallerEmailKey, "owner-1@example.com")

	return ctx, rec
}

func sampleView() *dto.ContentView {
	return &dto.ContentView{
		ContentItem: model.ContentItem{
			ID:        "abc",
			OwnerID:   "owner-1",
			Title:     "clip",
			CreatedAt: time.Now().UTC(),
		},
		VideoURL: "https://store.example/videos/abc",
	}
}

func TestUploadHandler(t *testing.T) {
	t.Parallel()

	service := &fakeContentService{view: sampleView()}
	handler := NewUploadHandler(service)

	body, contentType := multipartBody(t, "video", "clip.mp4", mp4Header, map[string]string{
		"title":          "clip",
		"description":    "a clip",
		"category":       "demo",
		"duration_label": "03:25",
		"visibility":     "public",
	})
	ctx, rec := newUploadContext(t, body, contentType)

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, "owner-1", service.uploadedOwner)
	assert.Equal(t, "video/mp4", service.uploadedType)
	assert.Equal(t, int64(len(mp4Header)), service.uploadedSize)
	assert.Equal(t, "clip", service.uploadedDraft.Title)
	assert.Equal(t, "03:25", service.uploadedDraft.DurationLabel)
	assert.Equal(t, model.VisibilityPublic, service.uploadedDraft.Visibility)

	var view dto.ContentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "abc", view.ID)
	assert.NotEmpty(t, view.VideoURL)
}

func TestUploadHandlerRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		field    string
		filename string
		payload  []byte
		fields   map[string]string
	}{
		{
			name:     "missing title",
			field:    "video",
			filename: "clip.mp4",
			payload:  mp4Header,
			fields:   map[string]string{"title": "   "},
		},
		{
			name:     "bad duration label",
			field:    "video",
			filename: "clip.mp4",
			payload:  mp4Header,
			fields:   map[string]string{"title": "clip", "duration_label": "3:5"},
		},
		{
			name:     "bad visibility",
			field:    "video",
			filename: "clip.mp4",
			payload:  mp4Header,
			fields:   map[string]string{"title": "clip", "visibility": "unlisted"},
		},
		{
			name:     "missing video part",
			field:    "attachment",
			filename: "clip.mp4",
			payload:  mp4Header,
			fields:   map[string]string{"title": "clip"},
		},
		{
			name:     "non-video payload",
			field:    "video",
			filename: "clip.mp4",
			payload:  []byte("plain text, not a video at all"),
			fields:   map[string]string{"title": "clip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewUploadHandler(&fakeContentService{view: sampleView()})
			body, contentType := multipartBody(t, tt.field, tt.filename, tt.payload, tt.fields)
			ctx, rec := newUploadContext(t, body, contentType)

			require.NoError(t, handler.Handle(ctx))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUploadHandlerDefaultsVisibilityToPublic(t *testing.T) {
	t.Parallel()

	service := &fakeContentService{view: sampleView()}
	handler := NewUploadHandler(service)

	body, contentType := multipartBody(t, "video", "clip.mp4", mp4Header, map[string]string{
		"title": "clip",
	})
	ctx, rec := newUploadContext(t, body, contentType)

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, model.VisibilityPublic, service.uploadedDraft.Visibility)
}

func TestThumbnailHandler(t *testing.T) {
	t.Parallel()

	service := &fakeContentService{view: sampleView()}
	handler := NewThumbnailHandler(service)

	body, contentType := multipartBody(t, "thumbnail", "thumb.png", pngHeader, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/contents/abc/thumbnail", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames(presentation.ContentIDParam)
	ctx.SetParamValues("abc")
	ctx.Set(presentation.CallerIDKey, "owner-1")

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", service.attachedContentID)
}

func TestThumbnailHandlerRejectsNonImage(t *testing.T) {
	t.Parallel()

	handler := NewThumbnailHandler(&fakeContentService{view: sampleView()})

	body, contentType := multipartBody(t, "thumbnail", "thumb.png", mp4Header, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/contents/abc/thumbnail", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames(presentation.ContentIDParam)
	ctx.SetParamValues("abc")

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	service := &fakeContentService{listViews: []dto.ContentView{*sampleView()}}
	handler := NewListHandler(service)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contents", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(presentation.CallerIDKey, "viewer-1")

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var views []dto.ContentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "abc", views[0].ID)
}

func TestDeleteHandler(t *testing.T) {
	t.Parallel()

	service := &fakeContentService{}
	handler := NewDeleteHandler(service)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/contents/abc", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames(presentation.ContentIDParam)
	ctx.SetParamValues("abc")
	ctx.Set(presentation.CallerIDKey, "owner-1")

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc", service.deletedContentID)
	assert.Equal(t, "owner-1", service.deletedCallerID)
}

func TestDeleteHandlerForbiddenForStranger(t *testing.T) {
	t.Parallel()

	service := &fakeContentService{
		err: apperror.New(apperror.Unauthorized, "only the owner may delete a content item"),
	}
	handler := NewDeleteHandler(service)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/contents/abc", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames(presentation.ContentIDParam)
	ctx.SetParamValues("abc")
	ctx.Set(presentation.CallerIDKey, "stranger")

	require.NoError(t, handler.Handle(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
