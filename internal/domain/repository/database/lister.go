package database

import (
	"context"

	"clipshelf/internal/domain/model"
)

// Lister returns all reviews for a content item via the content_id secondary
// index. No ordering is guaranteed; ordering is the caller's concern.
type Lister interface {
	GetByContent(ctx context.Context, contentID string) ([]model.Review, error)
}
