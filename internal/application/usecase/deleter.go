package usecase

import (
	"context"
	"errors"
	"fmt"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/repository/blob"
	"vidvault/internal/domain/repository/metadata"
	"vidvault/pkg/logger"
)

type Deleter struct {
	retriever   metadata.Retriever
	metaRemover metadata.Remover
	blobRemover blob.Remover
}

func NewDeleter(retriever metadata.Retriever, metaRemover metadata.Remover,
	blobRemover blob.Remover,
) *Deleter {
	return &Deleter{
		retriever:   retriever,
		metaRemover: metaRemover,
		blobRemover: blobRemover,
	}
}

// Delete removes a video the viewer owns. The metadata record goes first;
// blob removal is best effort afterwards, since an orphaned blob is a
// lesser harm than a user-visible failed delete with half-applied state.
func (d *Deleter) Delete(ctx context.Context, viewerID, videoID string) error {
	if viewerID == "" {
		return entity.ErrUnauthorized
	}

	video, err := d.retriever.GetByID(ctx, videoID)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("look up video record: %w", err)
	}

	if video.OwnerID != viewerID {
		return entity.ErrForbidden
	}

	if err := d.metaRemover.RemoveByID(ctx, videoID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// A concurrent delete won the race.
			return entity.ErrNotFound
		}

		return fmt.Errorf("remove video record: %w", err)
	}

	if err := d.blobRemover.Remove(video.StoredFilename); err != nil {
		logger.Error("orphaned blob left after delete",
			"video_id", videoID, "filename", video.StoredFilename, "err", err)
	}

	return nil
}
