package metadata

import (
	"context"

	"vidvault/internal/domain/model"
)

// Lister returns every video record, ordered by insertion sequence. Callers
// apply their own sort policy on top.
type Lister interface {
	ListAll(ctx context.Context) ([]model.Video, error)
}
