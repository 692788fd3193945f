package database

import (
	"context"

	"clipshelf/internal/domain/model"
)

// Writer inserts a new review document.
type Writer interface {
	Write(ctx context.Context, review *model.Review) error
}
