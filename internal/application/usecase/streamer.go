package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/repository/blob"
	"vidvault/internal/domain/repository/metadata"
	"vidvault/pkg/byterange"
	"vidvault/pkg/logger"
	"vidvault/pkg/utils"
)

type Streamer struct {
	retriever  metadata.Retriever
	blobOpener blob.Opener
}

func NewStreamer(retriever metadata.Retriever, blobOpener blob.Opener) *Streamer {
	return &Streamer{
		retriever:  retriever,
		blobOpener: blobOpener,
	}
}

// Stream walks the playback pipeline: authorization, record lookup, blob
// check, range resolution. Any authenticated viewer may stream any video;
// ownership gates deletion, not viewing. The returned stream body is
// positioned at the start of the resolved interval and the caller must
// close it.
func (s *Streamer) Stream(ctx context.Context, viewerID, videoID, rangeHeader string) (*entity.Stream, error) {
	if viewerID == "" {
		return nil, entity.ErrUnauthorized
	}

	video, err := s.retriever.GetByID(ctx, videoID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up video record: %w", err)
	}

	// Re-stat at request time: blobs are immutable post-upload, but the
	// range math must hold even if the file was tampered with externally.
	size, err := s.blobOpener.Size(video.StoredFilename)
	if errors.Is(err, entity.ErrNotFound) {
		logger.Error("metadata record has no blob on disk",
			"video_id", video.ID, "filename", video.StoredFilename)

		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("stat blob: %w", err)
	}

	res := byterange.Resolve(rangeHeader, size)

	contentType := video.ContentType
	if contentType == "" {
		contentType = utils.GetMimeTypeFromExtension(path.Ext(video.StoredFilename))
	}

	stream := &entity.Stream{
		Resolution:  res,
		TotalSize:   size,
		ContentType: contentType,
	}

	if res.Kind == byterange.Unsatisfiable {
		return stream, nil
	}

	f, err := s.blobOpener.Open(video.StoredFilename)
	if errors.Is(err, entity.ErrNotFound) {
		logger.Error("blob disappeared between stat and open",
			"video_id", video.ID, "filename", video.StoredFilename)

		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}

	if res.Kind == byterange.Partial {
		if _, err := f.Seek(res.Start, io.SeekStart); err != nil {
			f.Close()

			return nil, fmt.Errorf("seek blob: %w", err)
		}
	}

	stream.Body = f

	return stream, nil
}
