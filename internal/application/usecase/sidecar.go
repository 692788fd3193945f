package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
	"clipshelf/internal/domain/repository/blobstore"
)

// signedURLTTL is the validity window for access URLs minted at read time.
const signedURLTTL = time.Hour

func metaKey(contentID string) string {
	return blobstore.MetaPrefix + contentID + ".json"
}

// readSidecar fetches and parses the metadata sidecar for contentID. A
// missing key surfaces as NotFound, a malformed document as StoreUnavailable.
func readSidecar(ctx context.Context, blobs blobstore.Reader, contentID string) (*model.ContentItem, error) {
	data, err := blobs.Get(ctx, metaKey(contentID))
	if err != nil {
		return nil, err
	}

	var item model.ContentItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, apperror.Wrap(apperror.StoreUnavailable, "malformed metadata sidecar", err)
	}

	return &item, nil
}

func writeSidecar(ctx context.Context, blobs blobstore.Writer, item *model.ContentItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "sidecar encoding failed", err)
	}

	return blobs.Put(ctx, metaKey(item.ID), bytes.NewReader(data), int64(len(data)), "application/json")
}

// hydrate turns a sidecar record into a view with fresh signed URLs. URLs are
// re-derived from the stable keys on every call; a persisted URL would
// silently expire.
func hydrate(ctx context.Context, signer blobstore.URLSigner, item *model.ContentItem) (*dto.ContentView, error) {
	videoURL, err := signer.SignedURL(ctx, item.BlobKey, signedURLTTL)
	if err != nil {
		return nil, err
	}

	view := &dto.ContentView{
		ContentItem: *item,
		VideoURL:    videoURL,
	}

	if item.ThumbnailKey != "" {
		thumbURL, err := signer.SignedURL(ctx, item.ThumbnailKey, signedURLTTL)
		if err != nil {
			return nil, err
		}
		view.ThumbnailURL = thumbURL
	}

	return view, nil
}
