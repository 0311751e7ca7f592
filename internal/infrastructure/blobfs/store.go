// Package blobfs stores video blobs as immutable files in a single local
// directory, keyed by their sanitized stored filename.
package blobfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vidvault/internal/domain/entity"
	"vidvault/pkg/utils"
)

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// path maps a stored filename to its on-disk location, refusing anything
// that is not a plain sanitized path component.
func (s *Store) path(storedFilename string) (string, error) {
	if storedFilename == "" || storedFilename != utils.SanitizeFilename(storedFilename) {
		return "", fmt.Errorf("%w: unsafe blob name %q", entity.ErrNotFound, storedFilename)
	}

	return filepath.Join(s.dir, storedFilename), nil
}

func (s *Store) Write(ctx context.Context, storedFilename string, r io.Reader) (int64, error) {
	p, err := s.path(storedFilename)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return 0, fmt.Errorf("create blob: %w", err)
	}

	n, err := io.Copy(f, contextReader{ctx: ctx, r: r})
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(p)

		return 0, fmt.Errorf("write blob: %w", err)
	}

	return n, nil
}

func (s *Store) Open(storedFilename string) (io.ReadSeekCloser, error) {
	p, err := s.path(storedFilename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}

	return f, nil
}

func (s *Store) Size(storedFilename string) (int64, error) {
	p, err := s.path(storedFilename)
	if err != nil {
		return 0, err
	}

	fi, err := os.Stat(p)
	if errors.Is(err, os.ErrNotExist) {
		return 0, entity.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("stat blob: %w", err)
	}

	return fi.Size(), nil
}

func (s *Store) Remove(storedFilename string) error {
	p, err := s.path(storedFilename)
	if err != nil {
		return err
	}

	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("remove blob: %w", err)
	}

	return nil
}

// contextReader aborts a long copy once the request context is canceled, so
// a disconnected uploader does not keep writing to disk.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
