package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DiskStorage persists documents as JSON files under a single data
// directory. Writes go through a temp file and rename so readers never
// observe a partially written document.
type DiskStorage struct {
	dataDir string
}

// NewDiskStorage creates a DiskStorage rooted at dataDir, creating the
// directory if needed.
func NewDiskStorage(dataDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &DiskStorage{dataDir: dataDir}, nil
}

// Read decodes the JSON document at loc into out.
func (s *DiskStorage) Read(loc string, out any) error {
	data, err := os.ReadFile(s.path(loc))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read document %s: %w", loc, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		logrus.WithFields(logrus.Fields{"location": loc, "error": err}).
			Warn("Persisted document is not decodable")
		return fmt.Errorf("%w: %s", ErrParse, loc)
	}
	return nil
}

// Write atomically replaces the document at loc.
func (s *DiskStorage) Write(loc string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", loc, err)
	}

	target := s.path(loc)
	tmp, err := os.CreateTemp(s.dataDir, loc+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", loc, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document %s: %w", loc, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", loc, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document %s: %w", loc, err)
	}
	return nil
}

// Delete removes the document at loc.
func (s *DiskStorage) Delete(loc string) error {
	err := os.Remove(s.path(loc))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete document %s: %w", loc, err)
	}
	return nil
}

// Exists reports whether a document is present at loc.
func (s *DiskStorage) Exists(loc string) (bool, error) {
	_, err := os.Stat(s.path(loc))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat document %s: %w", loc, err)
	}
	return true, nil
}

func (s *DiskStorage) path(loc string) string {
	return filepath.Join(s.dataDir, filepath.Base(loc))
}
