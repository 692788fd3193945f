package abstraction

import (
	"context"
	"io"

	"clipshelf/internal/domain/dto"
)

// Uploader publishes a new content item from a validated draft.
type Uploader interface {
	Upload(ctx context.Context, body io.Reader, size int64, contentType string,
		draft dto.ContentDraft, ownerID string) (*dto.ContentView, error)
}

// ThumbnailAttacher adds or replaces a content item's thumbnail.
type ThumbnailAttacher interface {
	AttachThumbnail(ctx context.Context, contentID string, body io.Reader,
		size int64, contentType string) (*dto.ContentView, error)
}

// Lister returns every content item visible to the caller, newest first.
type Lister interface {
	ListVisible(ctx context.Context, callerID string) ([]dto.ContentView, error)
}

// Deleter removes a content item after an ownership check.
type Deleter interface {
	DeleteContent(ctx context.Context, contentID, callerID string) error
}
