package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/model"
	"vidvault/internal/domain/repository/blob"
	"vidvault/internal/domain/repository/metadata"
	"vidvault/pkg/logger"
	"vidvault/pkg/utils"
)

// MaxUploadBytes caps a single upload at 500 MiB.
const MaxUploadBytes int64 = 500 * 1024 * 1024

// sniffLen is how much of the stream head is fed to MIME detection.
const sniffLen = 3072

var allowedExtensions = map[string]bool{
	"mp4":  true,
	"avi":  true,
	"mov":  true,
	"mkv":  true,
	"webm": true,
}

type Ingestor struct {
	blobWriter  blob.Writer
	blobRemover blob.Remover
	metaWriter  metadata.Writer
	maxBytes    int64
}

func NewIngestor(blobWriter blob.Writer, blobRemover blob.Remover,
	metaWriter metadata.Writer, maxBytes int64,
) *Ingestor {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}

	return &Ingestor{
		blobWriter:  blobWriter,
		blobRemover: blobRemover,
		metaWriter:  metaWriter,
		maxBytes:    maxBytes,
	}
}

// Ingest validates the upload, persists the blob under a fresh id and
// inserts its metadata record. Validation failures reject the upload before
// a single byte reaches disk; a failed record insert removes the blob again
// so no orphan survives.
func (i *Ingestor) Ingest(ctx context.Context, ownerID, originalFilename string,
	sizeBytes int64, body io.Reader,
) (entity.UploadResult, error) {
	ext, err := i.validate(originalFilename, sizeBytes)
	if err != nil {
		return entity.UploadResult{}, err
	}

	sanitized := utils.SanitizeFilename(originalFilename)
	if sanitized == "" {
		return entity.UploadResult{}, entity.NewValidationError(
			entity.ReasonEmptyFilename, "filename contains no usable characters")
	}

	id := uuid.NewString()
	storedFilename := id + "_" + sanitized

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return entity.UploadResult{}, fmt.Errorf("read upload stream: %w", err)
	}
	contentType := mimetype.Detect(head[:n]).String()

	// maxBytes+1 so an oversized stream is detectable below.
	limited := io.LimitReader(io.MultiReader(bytes.NewReader(head[:n]), body), i.maxBytes+1)

	written, err := i.blobWriter.Write(ctx, storedFilename, limited)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("persist blob: %w", err)
	}

	if written > i.maxBytes {
		i.removeBlob(storedFilename, "oversized upload")

		return entity.UploadResult{}, entity.NewValidationError(
			entity.ReasonTooLarge, "video exceeds the maximum upload size")
	}

	video := &model.Video{
		ID:             id,
		Title:          originalFilename,
		StoredFilename: storedFilename,
		OwnerID:        ownerID,
		UploadedAt:     time.Now().UTC(),
		SizeBytes:      written,
		Format:         strings.ToUpper(ext),
		ContentType:    contentType,
	}

	if _, err := i.metaWriter.Insert(ctx, video); err != nil {
		i.removeBlob(storedFilename, "failed metadata insert")

		return entity.UploadResult{}, fmt.Errorf("insert video record: %w", err)
	}

	return entity.UploadResult{
		ID:        id,
		Title:     originalFilename,
		SizeBytes: written,
		Format:    video.Format,
	}, nil
}

// validate applies the upload rules and returns the lower-cased extension.
func (i *Ingestor) validate(originalFilename string, sizeBytes int64) (string, error) {
	if strings.TrimSpace(originalFilename) == "" {
		return "", entity.NewValidationError(entity.ReasonEmptyFilename, "no filename provided")
	}

	ext := strings.TrimPrefix(path.Ext(originalFilename), ".")
	if ext == "" {
		return "", entity.NewValidationError(entity.ReasonNoExtension, "filename has no extension")
	}

	ext = strings.ToLower(ext)
	if !allowedExtensions[ext] {
		return "", entity.NewValidationError(entity.ReasonDisallowedExtension,
			"invalid file type, allowed: MP4, AVI, MOV, MKV, WEBM")
	}

	if sizeBytes > i.maxBytes {
		return "", entity.NewValidationError(entity.ReasonTooLarge,
			"video exceeds the maximum upload size")
	}

	return ext, nil
}

func (i *Ingestor) removeBlob(storedFilename, cause string) {
	if err := i.blobRemover.Remove(storedFilename); err != nil {
		logger.Error("failed to remove blob after "+cause,
			"filename", storedFilename, "err", err)
	}
}
