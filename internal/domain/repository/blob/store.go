package blob

import (
	"context"
	"io"
)

// Writer persists a blob under a stored filename and reports the number of
// bytes written.
type Writer interface {
	Write(ctx context.Context, storedFilename string, r io.Reader) (int64, error)
}

// Opener gives seekable read access to a stored blob. Size re-stats the
// file at call time rather than trusting recorded metadata.
type Opener interface {
	Open(storedFilename string) (io.ReadSeekCloser, error)
	Size(storedFilename string) (int64, error)
}

// Remover unlinks a stored blob, failing with entity.ErrNotFound when it is
// already gone.
type Remover interface {
	Remove(storedFilename string) error
}

// Store is the full blob contract.
type Store interface {
	Writer
	Opener
	Remover
}
