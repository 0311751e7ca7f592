package abstraction

import (
	"context"
	"io"

	"vidvault/internal/domain/entity"
)

// Ingestor validates and persists an uploaded video.
type Ingestor interface {
	Ingest(ctx context.Context, ownerID, originalFilename string,
		sizeBytes int64, body io.Reader) (entity.UploadResult, error)
}
