package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"clipshelf/internal/domain/apperror"
)

type ReviewRemover struct {
	db *Database
}

func NewReviewRemover(db *Database) *ReviewRemover {
	return &ReviewRemover{db: db}
}

func (r *ReviewRemover) RemoveByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(ReviewCollection)

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "review delete failed", err)
	}

	return nil
}
