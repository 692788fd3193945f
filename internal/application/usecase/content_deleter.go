package usecase

import (
	"context"
	"time"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/event"
	"clipshelf/internal/domain/repository/blobstore"
	"clipshelf/pkg/hub"
	"clipshelf/pkg/logger"
)

type deleterBlobs interface {
	blobstore.Reader
	blobstore.Remover
	blobstore.UsageReporter
}

// ContentDeleter removes a content item: video blob, thumbnail blob if one
// was attached, then the metadata sidecar, in that order. A failure partway
// is reported as a partial failure and never rolled back; a sidecar left
// pointing at deleted blobs is tolerated by readers.
type ContentDeleter struct {
	blobs         deleterBlobs
	notifications *hub.Hub[event.Notification]
}

func NewContentDeleter(blobs deleterBlobs, notifications *hub.Hub[event.Notification]) *ContentDeleter {
	return &ContentDeleter{
		blobs:         blobs,
		notifications: notifications,
	}
}

func (d *ContentDeleter) DeleteContent(ctx context.Context, contentID, callerID string) error {
	item, err := readSidecar(ctx, d.blobs, contentID)
	if err != nil {
		return err
	}

	// Ownership is checked here, against the freshest read, not upstream.
	if item.OwnerID != callerID {
		return apperror.New(apperror.Unauthorized, "only the owner may delete a content item")
	}

	if err := d.blobs.Remove(ctx, item.BlobKey); err != nil {
		return apperror.Wrap(apperror.PartialFailure, "video blob deletion failed, metadata kept", err)
	}

	if item.ThumbnailKey != "" {
		if err := d.blobs.Remove(ctx, item.ThumbnailKey); err != nil {
			return apperror.Wrap(apperror.PartialFailure, "thumbnail deletion failed after video deletion", err)
		}
	}

	if err := d.blobs.Remove(ctx, metaKey(contentID)); err != nil {
		return apperror.Wrap(apperror.PartialFailure, "metadata deletion failed after blob deletion", err)
	}

	d.notifyUsage(ctx)

	return nil
}

func (d *ContentDeleter) notifyUsage(ctx context.Context) {
	used, err := d.blobs.Usage(ctx)
	if err != nil {
		logger.Warn("storage usage lookup failed after delete", "err", err)

		return
	}

	d.notifications.Publish(event.Notification{
		StorageUsageChanged: &event.StorageUsageChanged{
			UsedBytes: used,
			At:        time.Now().UTC(),
		},
	})
}
