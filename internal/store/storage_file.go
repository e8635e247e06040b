package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/lacnutry/internal/logger"
)

// fileKeyValueStorage keeps every key in one JSON document on disk. Each
// write rewrites the whole document through a temp file and a rename, so a
// crash mid-write leaves the previous version intact.
type fileKeyValueStorage struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	items  map[string]string
	closed bool
}

type filePersistedState struct {
	Version int               `json:"version"`
	Items   map[string]string `json:"items"`
}

const fileFormatVersion = 1

// NewFileKeyValueStorage opens (or lazily creates) the JSON document at path.
func NewFileKeyValueStorage(path string, log *logger.Logger) (KeyValueStorage, error) {
	s := &fileKeyValueStorage{
		path:   path,
		logger: log,
		items:  make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("keys", len(s.items)).Msg("file key-value storage opened")
	return s, nil
}

func (s *fileKeyValueStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrReadingFile, err)
	}
	if st.Items != nil {
		s.items = st.Items
	}
	return nil
}

// persist must be called with mu held for writing.
func (s *fileKeyValueStorage) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir: %w", ErrWritingFile, err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Version: fileFormatVersion, Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrWritingFile, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	return nil
}

func (s *fileKeyValueStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrStorageClosed
	}
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *fileKeyValueStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	prev, had := s.items[key]
	s.items[key] = value
	if err := s.persist(); err != nil {
		// keep memory consistent with disk
		if had {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		s.logger.Err(err).Str("func", "*fileKeyValueStorage.Set").Str("key", key).Msg("error persisting value")
		return err
	}
	return nil
}

func (s *fileKeyValueStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	prev, had := s.items[key]
	if !had {
		return nil
	}
	delete(s.items, key)
	if err := s.persist(); err != nil {
		s.items[key] = prev
		s.logger.Err(err).Str("func", "*fileKeyValueStorage.Remove").Str("key", key).Msg("error persisting removal")
		return err
	}
	return nil
}

func (s *fileKeyValueStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// snapshot returns a copy of all entries. Used in tests.
func (s *fileKeyValueStorage) snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.items)
}
