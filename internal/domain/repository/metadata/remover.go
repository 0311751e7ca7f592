package metadata

import "context"

// Remover deletes a video record. RemoveByID fails with entity.ErrNotFound
// when the id is absent.
type Remover interface {
	RemoveByID(ctx context.Context, id string) error
}
