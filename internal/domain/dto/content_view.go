package dto

import "clipshelf/internal/domain/model"

// ContentView is a fully hydrated content item: the sidecar metadata plus
// fresh time-limited access URLs. URLs are reissued on every read and never
// persisted, so a view is only valid within the signing window.
type ContentView struct {
	model.ContentItem

	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// ContentDraft carries the caller-validated metadata for a new upload.
type ContentDraft struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	DurationLabel string           `json:"duration_label"`
	Visibility    model.Visibility `json:"visibility"`
}
