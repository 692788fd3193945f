// Package event defines the notification events the core emits toward
// presentation components. Delivery is fire-and-forget, at most once per
// publish; this is a display refresh signal, not a durable event log.
package event

import "time"

// ContentCreated is published after a successful upload so catalog views can
// refresh their backing collection.
type ContentCreated struct {
	ContentID string    `json:"content_id"`
	OwnerID   string    `json:"owner_id"`
	At        time.Time `json:"at"`
}

// StorageUsageChanged is published whenever stored bytes change (upload or
// delete) so quota displays can refresh.
type StorageUsageChanged struct {
	UsedBytes int64     `json:"used_bytes"`
	At        time.Time `json:"at"`
}

// Notification is the union carried on the hub. Exactly one field is set.
type Notification struct {
	ContentCreated      *ContentCreated      `json:"content_created,omitempty"`
	StorageUsageChanged *StorageUsageChanged `json:"storage_usage_changed,omitempty"`
}
