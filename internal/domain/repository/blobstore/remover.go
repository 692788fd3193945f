package blobstore

import "context"

// Remover deletes an object by key. Removing an absent key is not an error.
type Remover interface {
	Remove(ctx context.Context, key string) error
}

// UsageReporter sums the stored bytes under the service's key namespaces.
type UsageReporter interface {
	Usage(ctx context.Context) (int64, error)
}
