package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/model"
)

// FileStore keeps every video record in a single JSON document keyed by
// video id. The whole document is rewritten on each mutation, so mutations
// serialize on one exclusive section; reads work off the in-memory map and
// never observe a half-written document.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	videos  map[string]model.Video
	nextSeq int64
}

// NewFileStore opens (or initializes) the metadata document at path.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create metadata dir: %w", err)
	}

	s := &FileStore{
		path:    path,
		videos:  make(map[string]model.Video),
		nextSeq: 1,
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read metadata document: %w", err)
	}

	if err := json.Unmarshal(raw, &s.videos); err != nil {
		return nil, fmt.Errorf("%w: decode metadata document: %v", entity.ErrStoreDivergence, err)
	}
	for _, v := range s.videos {
		if v.Seq >= s.nextSeq {
			s.nextSeq = v.Seq + 1
		}
	}

	return s, nil
}

func (s *FileStore) GetByID(_ context.Context, id string) (*model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &v, nil
}

func (s *FileStore) ListAll(_ context.Context) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seq < all[j].Seq })

	return all, nil
}

func (s *FileStore) Insert(_ context.Context, video *model.Video) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[video.ID]; ok {
		return nil, entity.ErrDuplicate
	}

	stored := *video
	stored.Seq = s.nextSeq
	s.videos[video.ID] = stored

	if err := s.persist(); err != nil {
		delete(s.videos, video.ID)

		return nil, err
	}
	s.nextSeq++

	return &stored, nil
}

func (s *FileStore) RemoveByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.videos[id]
	if !ok {
		return entity.ErrNotFound
	}
	delete(s.videos, id)

	if err := s.persist(); err != nil {
		s.videos[id] = removed

		return err
	}

	return nil
}

// persist writes the document to a temp file, flushes it to stable storage
// and renames it over the live document, so a crash leaves either the old
// or the new complete version. Callers must hold the write lock.
func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.videos, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode metadata document: %v", entity.ErrStoreDivergence, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".metadata-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp document: %v", entity.ErrStoreDivergence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err == nil {
		err = tmp.Sync()
	}
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("%w: write temp document: %v", entity.ErrStoreDivergence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("%w: close temp document: %v", entity.ErrStoreDivergence, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("%w: replace metadata document: %v", entity.ErrStoreDivergence, err)
	}

	return nil
}
