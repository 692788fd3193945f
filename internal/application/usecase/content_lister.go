package usecase

import (
	"context"
	"sort"
	"strings"

	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/repository/blobstore"
	"clipshelf/pkg/logger"
)

type listerBlobs interface {
	blobstore.Reader
	blobstore.Lister
	blobstore.URLSigner
}

// ContentLister hydrates every metadata sidecar into a view with fresh signed
// URLs and filters by visibility. One corrupt record never fails the whole
// listing: per-item failures are logged and the item is omitted.
type ContentLister struct {
	blobs listerBlobs
}

func NewContentLister(blobs listerBlobs) *ContentLister {
	return &ContentLister{blobs: blobs}
}

func (l *ContentLister) ListVisible(ctx context.Context, callerID string) ([]dto.ContentView, error) {
	metaKeys, err := l.blobs.List(ctx, blobstore.MetaPrefix)
	if err != nil {
		return nil, err
	}

	// Metadata existence does not guarantee blob existence (an upload can
	// fail after the sidecar write, a delete can crash between steps). One
	// listing of the video namespace screens out records whose blob is gone.
	present, err := l.presentVideoKeys(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]dto.ContentView, 0, len(metaKeys))
	for _, key := range metaKeys {
		contentID := contentIDFromMetaKey(key)

		item, err := readSidecar(ctx, l.blobs, contentID)
		if err != nil {
			logger.Warn("skipping unreadable content item", "key", key, "err", err)

			continue
		}

		if !item.VisibleTo(callerID) {
			continue
		}

		if !present[item.BlobKey] {
			logger.Warn("skipping content item with missing blob", "id", item.ID, "blob_key", item.BlobKey)

			continue
		}

		view, err := hydrate(ctx, l.blobs, item)
		if err != nil {
			logger.Warn("skipping content item that failed hydration", "id", item.ID, "err", err)

			continue
		}

		views = append(views, *view)
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})

	return views, nil
}

func (l *ContentLister) presentVideoKeys(ctx context.Context) (map[string]bool, error) {
	keys, err := l.blobs.List(ctx, blobstore.VideoPrefix)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}

	return present, nil
}

func contentIDFromMetaKey(key string) string {
	id := strings.TrimPrefix(key, blobstore.MetaPrefix)

	return strings.TrimSuffix(id, ".json")
}
