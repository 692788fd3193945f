package broker

import (
	"context"

	"clipshelf/internal/domain/event"
)

// Publisher forwards notification events to an external stream so consumers
// outside the process can react to catalog and quota changes.
type Publisher interface {
	Publish(ctx context.Context, notification event.Notification) error
}
