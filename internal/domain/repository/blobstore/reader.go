package blobstore

import (
	"context"
	"time"
)

// Reader fetches an object's bytes by key.
type Reader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Lister enumerates object keys under a prefix.
type Lister interface {
	List(ctx context.Context, prefix string) ([]string, error)
}

// URLSigner mints a fresh time-bounded access URL for a key. Signed URLs are
// reissued on every read and never persisted.
type URLSigner interface {
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
