package usecase

import (
	"context"

	"clipshelf/internal/domain/dto"
	"clipshelf/internal/domain/model"
	"clipshelf/internal/domain/repository/database"
)

// AggregateRatings derives rating statistics from a review set. The average
// is exact (unrounded); rounding happens at display time only.
func AggregateRatings(reviews []model.Review) dto.RatingSummary {
	if len(reviews) == 0 {
		return dto.RatingSummary{}
	}

	var sum int
	for i := range reviews {
		sum += reviews[i].Rating
	}

	return dto.RatingSummary{
		Average: float64(sum) / float64(len(reviews)),
		Count:   len(reviews),
	}
}

// Rater recomputes the rating summary on every read. Nothing is cached; a
// full scan per read is the accepted cost at this scale.
type Rater struct {
	lister database.Lister
}

func NewRater(lister database.Lister) *Rater {
	return &Rater{lister: lister}
}

func (r *Rater) AverageRating(ctx context.Context, contentID string) (dto.RatingSummary, error) {
	reviews, err := r.lister.GetByContent(ctx, contentID)
	if err != nil {
		return dto.RatingSummary{}, err
	}

	return AggregateRatings(reviews), nil
}
