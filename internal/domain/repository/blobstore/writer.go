package blobstore

import (
	"context"
	"io"
)

// Writer puts an object under a namespaced key.
type Writer interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
}
