package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/model"
)

type ReviewUpdater struct {
	db *Database
}

func NewReviewUpdater(db *Database) *ReviewUpdater {
	return &ReviewUpdater{db: db}
}

func (u *ReviewUpdater) UpdateFields(ctx context.Context, id, comment string, rating int, updatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(ReviewCollection)

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"comment":    comment,
			"rating":     rating,
			"updated_at": updatedAt,
		},
	})
	if err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "review update failed", err)
	}
	if result.MatchedCount == 0 {
		return apperror.New(apperror.NotFound, "review not found")
	}

	return nil
}

// AppendReply pushes the reply onto the review's reply list. $push is an
// additive server-side merge: two concurrent appends both land, unlike a
// read-modify-write of the whole list.
func (u *ReviewUpdater) AppendReply(ctx context.Context, id string, reply model.Reply) error {
	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	coll := u.db.Client.Database(u.db.DBName).Collection(ReviewCollection)

	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"replies": reply},
	})
	if err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "reply append failed", err)
	}
	if result.MatchedCount == 0 {
		return apperror.New(apperror.NotFound, "review not found")
	}

	return nil
}
