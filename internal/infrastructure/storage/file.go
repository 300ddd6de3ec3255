// internal/infrastructure/storage/file.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each record in its own file under a directory, one file
// per key. This is the local-disk analogue of browser storage: writes to
// different keys are independent and can be interrupted between records.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed record store
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get retrieves a record by key
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return string(data), nil
}

// Set stores a record
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}
