package database

import (
	"context"

	"clipshelf/internal/domain/model"
)

// Retriever fetches a review by its composite id.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Review, error)
}
