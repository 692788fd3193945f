package database

import (
	"context"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/model"
)

type ReviewWriter struct {
	db *Database
}

func NewReviewWriter(db *Database) *ReviewWriter {
	return &ReviewWriter{db: db}
}

func (w *ReviewWriter) Write(ctx context.Context, review *model.Review) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(ReviewCollection)

	if _, err := coll.InsertOne(ctx, review); err != nil {
		return apperror.Wrap(apperror.StoreUnavailable, "review insert failed", err)
	}

	return nil
}
