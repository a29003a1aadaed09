package store

import (
	"testing"
	"time"

	"shopsettings/internal/settings"
	"shopsettings/internal/storage"
)

// testNow is the fixed clock all store tests run against.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStorage) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	s := New(mem, settings.NewGeneralSettingsAccessor(mem))
	s.Now = func() time.Time { return testNow }
	return s, mem
}

// failingStorage wraps MemoryStorage with injectable write/delete
// failures.
type failingStorage struct {
	*storage.MemoryStorage
	writeErr  error
	deleteErr error
}

func (f *failingStorage) Write(loc string, doc any) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	return f.MemoryStorage.Write(loc, doc)
}

func (f *failingStorage) Delete(loc string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.MemoryStorage.Delete(loc)
}

func newFailingStore(t *testing.T, writeErr, deleteErr error) (*Store, *failingStorage) {
	t.Helper()
	failing := &failingStorage{
		MemoryStorage: storage.NewMemoryStorage(),
		writeErr:      writeErr,
		deleteErr:     deleteErr,
	}
	s := New(failing, settings.NewGeneralSettingsAccessor(failing))
	s.Now = func() time.Time { return testNow }
	return s, failing
}
