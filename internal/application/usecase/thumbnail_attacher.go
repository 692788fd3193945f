package usecase

import (
	"context"
	"io"

	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/repository/blobstore"
	"clipshelf/pkg/utils"
)

type attacherBlobs interface {
	blobstore.Writer
	blobstore.Reader
	blobstore.URLSigner
}

// ThumbnailAttacher writes the thumbnail blob and then merges its key into
// the metadata sidecar.
type ThumbnailAttacher struct {
	blobs attacherBlobs
}

func NewThumbnailAttacher(blobs attacherBlobs) *ThumbnailAttacher {
	return &ThumbnailAttacher{blobs: blobs}
}

func (a *ThumbnailAttacher) AttachThumbnail(ctx context.Context, contentID string, body io.Reader,
	size int64, contentType string,
) (*dto.ContentView, error) {
	thumbKey := blobstore.ThumbnailPrefix + contentID + utils.GetExtensionFromMimeType(contentType)

	if err := a.blobs.Put(ctx, thumbKey, body, size, contentType); err != nil {
		return nil, err
	}

	// The sidecar is re-read immediately before the merge, never from a
	// cached copy, so a concurrent metadata write on the same item is not
	// clobbered. If the record is gone the thumbnail blob stays orphaned.
	item, err := readSidecar(ctx, a.blobs, contentID)
	if err != nil {
		return nil, err
	}

	item.ThumbnailKey = thumbKey
	if err := writeSidecar(ctx, a.blobs, item); err != nil {
		return nil, err
	}

	return hydrate(ctx, a.blobs, item)
}
