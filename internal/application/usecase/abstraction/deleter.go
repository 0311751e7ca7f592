package abstraction

import "context"

// Deleter removes a video owned by the viewer, metadata record and blob.
type Deleter interface {
	Delete(ctx context.Context, viewerID, videoID string) error
}
