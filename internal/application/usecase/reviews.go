package usecase

import (
	"context"
	"time"

	"clipshelf/internal/domain/apperror"
	"clipshelf/internal/domain/model"
	"clipshelf/internal/domain/repository/database"
)

// Reviews implements review CRUD and threaded replies over the document
// store. Updates and deletes re-fetch the record immediately before the
// ownership check so they never act on stale data; two concurrent edits by
// the same owner remain last-write-wins.
type Reviews struct {
	writer    database.Writer
	retriever database.Retriever
	lister    database.Lister
	updater   database.Updater
	remover   database.Remover
}

func NewReviews(writer database.Writer, retriever database.Retriever, lister database.Lister,
	updater database.Updater, remover database.Remover,
) *Reviews {
	return &Reviews{
		writer:    writer,
		retriever: retriever,
		lister:    lister,
		updater:   updater,
		remover:   remover,
	}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (r *Reviews) Create(ctx context.Context, contentID, authorID, authorEmail string,
	rating int, comment string,
) (*model.Review, error) {
	if !validRating(rating) {
		return nil, apperror.New(apperror.ValidationFailed, "rating must be between 1 and 5")
	}

	now := time.Now().UTC()
	review := &model.Review{
		ID:          model.CompositeID(contentID, now),
		ContentID:   contentID,
		AuthorID:    authorID,
		AuthorEmail: authorEmail,
		Rating:      rating,
		Comment:     comment,
		CreatedAt:   now,
		UpdatedAt:   now,
		Replies:     []model.Reply{},
	}

	if err := r.writer.Write(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListForContent returns all reviews for a content item in store order;
// callers sort by recency or rating on demand.
func (r *Reviews) ListForContent(ctx context.Context, contentID string) ([]model.Review, error) {
	return r.lister.GetByContent(ctx, contentID)
}

func (r *Reviews) Update(ctx context.Context, reviewID, actorID, comment string, rating int) (*model.Review, error) {
	if !validRating(rating) {
		return nil, apperror.New(apperror.ValidationFailed, "rating must be between 1 and 5")
	}

	review, err := r.retriever.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.AuthorID != actorID {
		return nil, apperror.New(apperror.Unauthorized, "only the author may edit a review")
	}

	updatedAt := time.Now().UTC()
	if err := r.updater.UpdateFields(ctx, reviewID, comment, rating, updatedAt); err != nil {
		return nil, err
	}

	review.Comment = comment
	review.Rating = rating
	review.UpdatedAt = updatedAt

	return review, nil
}

func (r *Reviews) Delete(ctx context.Context, reviewID, actorID string) error {
	review, err := r.retriever.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.AuthorID != actorID {
		return apperror.New(apperror.Unauthorized, "only the author may delete a review")
	}

	return r.remover.RemoveByID(ctx, reviewID)
}

// AddReply appends a reply to the review's reply list through the store's
// additive merge, then re-reads the review so the caller sees the merged
// state including replies that raced in from other authors.
func (r *Reviews) AddReply(ctx context.Context, reviewID, authorID, authorEmail, content string) (*model.Review, error) {
	now := time.Now().UTC()
	reply := model.Reply{
		ID:          model.CompositeID(reviewID, now),
		AuthorID:    authorID,
		AuthorEmail: authorEmail,
		Content:     content,
		CreatedAt:   now,
	}

	if err := r.updater.AppendReply(ctx, reviewID, reply); err != nil {
		return nil, err
	}

	return r.retriever.GetByID(ctx, reviewID)
}
