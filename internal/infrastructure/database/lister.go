package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/model"
)

type ReviewLister struct {
	db *Database
}

func NewReviewLister(db *Database) *ReviewLister {
	return &ReviewLister{db: db}
}

// GetByContent returns every review for contentID via the content_id index.
// Result order is whatever the store hands back; callers sort on demand.
func (l *ReviewLister) GetByContent(ctx context.Context, contentID string) ([]model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(ReviewCollection)

	cursor, err := coll.Find(ctx, bson.M{"content_id": contentID})
	if err != nil {
		return nil, apperror.Wrap(apperror.StoreUnavailable, "review listing failed", err)
	}
	defer cursor.Close(ctx)

	var reviews []model.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, apperror.Wrap(apperror.StoreUnavailable, "review decoding failed", err)
	}

	return reviews, nil
}
