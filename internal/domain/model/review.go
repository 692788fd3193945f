package model

import (
	"fmt"
	"time"
)

// Review is a rated, threaded review of one content item, stored as a single
// document keyed by its composite id. Replies are denormalized onto the
// review; insertion order is chronological.
type Review struct {
	ID          string    `json:"_id"`
	ContentID   string    `json:"content_id"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	Rating      int       `json:"rating"` // 1..5
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Replies     []Reply   `json:"replies"` // never null, empty by default
}

// Reply is an append-only response on a review. Replies are never addressable
// outside their parent review and carry no edit or delete operations.
type Reply struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// CompositeID builds an identifier from a parent id and a creation time. The
// timestamp component makes ids unique per parent and naturally sortable by
// recency without a separate sequence generator.
func CompositeID(parentID string, at time.Time) string {
	return fmt.Sprintf("%s-%d", parentID, at.UnixNano())
}
