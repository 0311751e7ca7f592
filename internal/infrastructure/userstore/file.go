// Package userstore persists user accounts in a single JSON document,
// mirroring the metadata store's durability discipline.
package userstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"vidvault/internal/domain/entity"
	"vidvault/internal/domain/model"
)

type FileStore struct {
	path  string
	mu    sync.RWMutex
	users map[string]model.User
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create users dir: %w", err)
	}

	s := &FileStore{
		path:  path,
		users: make(map[string]model.User),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users document: %w", err)
	}

	if err := json.Unmarshal(raw, &s.users); err != nil {
		return nil, fmt.Errorf("%w: decode users document: %v", entity.ErrStoreDivergence, err)
	}

	return s, nil
}

func (s *FileStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return &u, nil
}

func (s *FileStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u

			return &u, nil
		}
	}

	return nil, entity.ErrNotFound
}

func (s *FileStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u

			return &u, nil
		}
	}

	return nil, entity.ErrNotFound
}

func (s *FileStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return entity.ErrDuplicate
	}
	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return entity.ErrDuplicate
		}
	}

	s.users[u.ID] = *u
	if err := s.persist(); err != nil {
		delete(s.users, u.ID)

		return err
	}

	return nil
}

func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode users document: %v", entity.ErrStoreDivergence, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp document: %v", entity.ErrStoreDivergence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err == nil {
		err = tmp.Sync()
	}
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err == nil {
		err = os.Rename(tmpName, s.path)
	}
	if err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("%w: write users document: %v", entity.ErrStoreDivergence, err)
	}

	return nil
}
