package database

import (
	"context"
	"time"

	"clipshelf/internal/domain/model"
)

// Updater mutates review documents in place.
type Updater interface {
	// UpdateFields overwrites comment, rating and updated_at on the review.
	UpdateFields(ctx context.Context, id, comment string, rating int, updatedAt time.Time) error

	// AppendReply adds the reply to the review's reply list with an additive
	// merge, never a whole-record overwrite. Concurrent appends from
	// different authors must both survive.
	AppendReply(ctx context.Context, id string, reply model.Reply) error
}
