package database

import "context"

// Remover deletes a review document by id.
type Remover interface {
	RemoveByID(ctx context.Context, id string) error
}
