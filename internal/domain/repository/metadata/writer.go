package metadata

import (
	"context"

	"vidvault/internal/domain/model"
)

// Writer inserts a new video record. Insert fails with entity.ErrDuplicate
// when the id is already present, and returns the stored record with its
// insertion sequence assigned.
type Writer interface {
	Insert(ctx context.Context, video *model.Video) (*model.Video, error)
}
