package settings

import (
	"errors"
	"fmt"

	"shopsettings/internal/storage"

	"github.com/sirupsen/logrus"
)

// GeneralSettingsAccessor owns the singleton GeneralAppSettings record.
// Reads always succeed: an absent or undecodable backing document yields
// the default record. Writes replace the whole record atomically.
//
// The accessor is constructed and injected explicitly; there is no
// package-level instance.
type GeneralSettingsAccessor struct {
	fileStorage storage.FileStorage
	location    string
}

// NewGeneralSettingsAccessor creates an accessor over the given storage.
func NewGeneralSettingsAccessor(fileStorage storage.FileStorage) *GeneralSettingsAccessor {
	return &GeneralSettingsAccessor{
		fileStorage: fileStorage,
		location:    storage.GeneralAppSettingsFile,
	}
}

// Settings loads the current record, or the default record when nothing
// usable is persisted.
func (a *GeneralSettingsAccessor) Settings() GeneralAppSettings {
	var s GeneralAppSettings
	err := a.fileStorage.Read(a.location, &s)
	if err == nil {
		return s
	}
	if !errors.Is(err, storage.ErrNotFound) {
		// A corrupt record degrades to defaults rather than failing; the
		// next save rewrites the document wholesale.
		logrus.WithField("error", err).Warn("Falling back to default app settings")
	}
	return GeneralAppSettings{}
}

// Save persists the whole record.
func (a *GeneralSettingsAccessor) Save(s GeneralAppSettings) error {
	if err := a.fileStorage.Write(a.location, s); err != nil {
		return fmt.Errorf("failed to save app settings: %w", err)
	}
	return nil
}
