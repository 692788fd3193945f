package model

import "time"

// Visibility controls who sees a content item in listings.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ContentItem is the JSON metadata sidecar stored next to a video blob. The
// sidecar is the record of intent and the blob the record of completion: the
// sidecar may exist while the blob write failed or was deleted out of band,
// and readers must treat that gap as "item unavailable" rather than fatal.
type ContentItem struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	DurationLabel string     `json:"duration_label"` // MM:SS
	Visibility    Visibility `json:"visibility"`
	BlobKey       string     `json:"blob_key"`
	ThumbnailKey  string     `json:"thumbnail_key,omitempty"` // empty until a thumbnail is attached
	CreatedAt     time.Time  `json:"created_at"`
}

// VisibleTo reports whether the item belongs in a listing for callerID.
func (c *ContentItem) VisibleTo(callerID string) bool {
	return c.Visibility == VisibilityPublic || c.OwnerID == callerID
}
