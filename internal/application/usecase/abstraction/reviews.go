package abstraction

import (
	"context"

	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
)

// Reviewer defines review CRUD and threaded replies.
type Reviewer interface {
	Create(ctx context.Context, contentID, authorID, authorEmail string,
		rating int, comment string) (*model.Review, error)
	ListForContent(ctx context.Context, contentID string) ([]model.Review, error)
	Update(ctx context.Context, reviewID, actorID, comment string, rating int) (*model.Review, error)
	Delete(ctx context.Context, reviewID, actorID string) error
	AddReply(ctx context.Context, reviewID, authorID, authorEmail, content string) (*model.Review, error)
}

// Rater derives rating statistics for a content item.
type Rater interface {
	AverageRating(ctx context.Context, contentID string) (dto.RatingSummary, error)
}
