// Package jsonfile implements the CollectionStore port on top of one
// pretty-printed JSON array per collection, stored under a data directory.
// It is the default store driver.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists each collection as <dataDir>/<collection>.json. A missing
// file reads as an empty collection and is created on first access. File
// access is serialized per store instance.
type Store struct {
	dataDir string
	mu      sync.Mutex
}

func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Name identifies the store in readiness probes.
func (s *Store) Name() string { return "jsonfile" }

// Check verifies the data directory exists and is writable.
func (s *Store) Check(_ context.Context) error {
	return s.ensureDataDir()
}

// ReadAll decodes the whole collection into out, creating an empty
// collection file when none exists yet.
func (s *Store) ReadAll(_ context.Context, collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.ensureFile(collection)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collection %s: %w", collection, err)
	}
	if len(raw) == 0 {
		raw = []byte("[]")
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode collection %s: %w", collection, err)
	}
	return nil
}

// WriteAll replaces the collection with items.
func (s *Store) WriteAll(_ context.Context, collection string, items any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureDataDir(); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}

	if err := os.WriteFile(s.path(collection), raw, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

func (s *Store) ensureDataDir() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("ensure data dir %s: %w", s.dataDir, err)
	}
	return nil
}

func (s *Store) ensureFile(collection string) (string, error) {
	if err := s.ensureDataDir(); err != nil {
		return "", err
	}

	path := s.path(collection)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return "", fmt.Errorf("init collection %s: %w", collection, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("stat collection %s: %w", collection, err)
	}
	return path, nil
}
