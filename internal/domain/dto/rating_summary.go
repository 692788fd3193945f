package dto

// RatingSummary is the derived rating statistics for one content item. It is
// recomputed from the full review set on every read, never persisted. Average
// stays unrounded here; rounding is a display concern.
type RatingSummary struct {
	Average float64 `json:"average"` // 0 when Count is 0
	Count   int     `json:"count"`
}
