package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStorage is an in-memory FileStorage that is safe for concurrent
// use. Documents round-trip through the same JSON codec as DiskStorage so
// encoding behavior stays identical between backends.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStorage creates and returns a new MemoryStorage instance.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string][]byte),
	}
}

// Read decodes the document at loc into out.
func (s *MemoryStorage) Read(loc string, out any) error {
	s.mu.RLock()
	data, exists := s.data[loc]
	s.mu.RUnlock()

	if !exists {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s", ErrParse, loc)
	}
	return nil
}

// Write replaces the document at loc.
func (s *MemoryStorage) Write(loc string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", loc, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[loc] = data
	return nil
}

// Delete removes the document at loc.
func (s *MemoryStorage) Delete(loc string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[loc]; !exists {
		return ErrNotFound
	}
	delete(s.data, loc)
	return nil
}

// SetRaw stores raw bytes at loc, bypassing the codec. Tests use this to
// seed legacy or malformed documents.
func (s *MemoryStorage) SetRaw(loc string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[loc] = append([]byte(nil), data...)
}

// Clear removes all documents.
func (s *MemoryStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string][]byte)
}
