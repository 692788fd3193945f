package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/event"
	"clipshelf/internal/domain/model"
	"clipshelf/internal/domain/repository/blobstore"
	"clipshelf/pkg/hub"
	"clipshelf/pkg/logger"
	"clipshelf/pkg/utils"
)

type uploaderBlobs interface {
	blobstore.Writer
	blobstore.URLSigner
	blobstore.UsageReporter
}

// ContentUploader writes a video blob under a fresh namespaced key and then
// the metadata sidecar referencing it, in that order. A failed blob write
// leaves no record; a failed sidecar write leaves an orphaned blob that is
// accepted as waste rather than rolled back.
type ContentUploader struct {
	blobs         uploaderBlobs
	notifications *hub.Hub[event.Notification]
}

func NewContentUploader(blobs uploaderBlobs, notifications *hub.Hub[event.Notification]) *ContentUploader {
	return &ContentUploader{
		blobs:         blobs,
		notifications: notifications,
	}
}

func (u *ContentUploader) Upload(ctx context.Context, body io.Reader, size int64, contentType string,
	draft dto.ContentDraft, ownerID string,
) (*dto.ContentView, error) {
	id := uuid.New().String()
	blobKey := blobstore.VideoPrefix + id + utils.GetExtensionFromMimeType(contentType)

	if err := u.blobs.Put(ctx, blobKey, body, size, contentType); err != nil {
		return nil, err
	}

	item := &model.ContentItem{
		ID:            id,
		OwnerID:       ownerID,
		Title:         draft.Title,
		Description:   draft.Description,
		Category:      draft.Category,
		DurationLabel: draft.DurationLabel,
		Visibility:    draft.Visibility,
		BlobKey:       blobKey,
		CreatedAt:     time.Now().UTC(),
	}

	if err := u.writeMetadata(ctx, item); err != nil {
		// The blob stays behind; cleanup of orphans is out of scope here.
		return nil, err
	}

	u.notifyCreated(ctx, item)

	return hydrate(ctx, u.blobs, item)
}

func (u *ContentUploader) writeMetadata(ctx context.Context, item *model.ContentItem) error {
	return writeSidecar(ctx, u.blobs, item)
}

func (u *ContentUploader) notifyCreated(ctx context.Context, item *model.ContentItem) {
	u.notifications.Publish(event.Notification{
		ContentCreated: &event.ContentCreated{
			ContentID: item.ID,
			OwnerID:   item.OwnerID,
			At:        time.Now().UTC(),
		},
	})

	used, err := u.blobs.Usage(ctx)
	if err != nil {
		logger.Warn("storage usage lookup failed after upload", "err", err)

		return
	}

	u.notifications.Publish(event.Notification{
		StorageUsageChanged: &event.StorageUsageChanged{
			UsedBytes: used,
			At:        time.Now().UTC(),
		},
	})
}
