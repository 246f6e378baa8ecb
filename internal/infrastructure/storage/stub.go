// Package storage provides object storage implementations for image files.
package storage

import (
	"context"
	"errors"
	"io"
	"sync"

	catalogapp "github.com/jellybean/emporium/internal/application/catalog"
)

// MemoryObjectStorage is an in-memory implementation of ObjectStorageService.
// Use this for development and tests when no S3-compatible backend is available.
type MemoryObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryObjectStorage creates an empty MemoryObjectStorage
func NewMemoryObjectStorage() *MemoryObjectStorage {
	return &MemoryObjectStorage{
		objects: make(map[string][]byte),
	}
}

// Ensure MemoryObjectStorage implements ObjectStorageService
var _ catalogapp.ObjectStorageService = (*MemoryObjectStorage)(nil)

// Upload reads the full content and stores it under the given key
func (s *MemoryObjectStorage) Upload(ctx context.Context, storageKey string, content io.Reader, size int64, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storageKey] = data
	return nil
}

// DeleteObject removes an object. Deleting a missing key is not an error,
// matching S3 semantics.
func (s *MemoryObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, storageKey)
	return nil
}

// ObjectExists reports whether an object is stored under the given key
func (s *MemoryObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[storageKey]
	return ok, nil
}

// Object returns the stored content for a key. Intended for assertions in tests.
func (s *MemoryObjectStorage) Object(storageKey string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[storageKey]
	return data, ok
}
