package abstraction

import (
	"context"

	"vidvault/internal/domain/entity"
)

// Streamer resolves a playback request into an open, range-resolved blob
// stream. The caller must close the returned stream body.
type Streamer interface {
	Stream(ctx context.Context, viewerID, videoID, rangeHeader string) (*entity.Stream, error)
}
