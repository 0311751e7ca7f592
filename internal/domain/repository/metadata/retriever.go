package metadata

import (
	"context"

	"vidvault/internal/domain/model"
)

// Retriever looks a single video record up by id.
type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Video, error)
}
