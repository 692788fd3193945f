package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/model"
)

type ReviewRetriever struct {
	db *Database
}

func NewReviewRetriever(db *Database) *ReviewRetriever {
	return &ReviewRetriever{db: db}
}

func (r *ReviewRetriever) GetByID(ctx context.Context, id string) (*model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ReviewCollection)

	var review model.Review
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.Wrap(apperror.NotFound, "review not found", err)
		}

		return nil, apperror.Wrap(apperror.StoreUnavailable, "review lookup failed", err)
	}

	return &review, nil
}
