package store

import (
	"errors"

	"shopsettings/internal/settings"
	"shopsettings/internal/storage"

	"github.com/sirupsen/logrus"
)

func (s *Store) loadOrdersSettings(siteID int64) (settings.OrdersSetting, error) {
	var saved settings.StoredOrderSettings
	if err := s.fileStorage.Read(storage.OrdersSettingsFile, &saved); err != nil {
		return settings.OrdersSetting{}, ErrNoOrdersSettings
	}

	setting, ok := saved.Settings[siteID]
	if !ok {
		return settings.OrdersSetting{}, ErrNoOrdersSettings
	}
	return setting, nil
}

// upsertOrdersSettings replaces the site's record with one built from the
// supplied fields, preserving every other site's record. Fields the
// action does not carry are dropped, not merged.
func (s *Store) upsertOrdersSettings(a UpsertOrdersSettings) error {
	existing := make(map[int64]settings.OrdersSetting)
	var saved settings.StoredOrderSettings
	if err := s.fileStorage.Read(storage.OrdersSettingsFile, &saved); err == nil && saved.Settings != nil {
		existing = saved.Settings
	}

	existing[a.SiteID] = settings.OrdersSetting{
		SiteID:              a.SiteID,
		OrderStatusesFilter: a.OrderStatusesFilter,
		DateRangeFilter:     a.DateRangeFilter,
	}

	if err := s.fileStorage.Write(storage.OrdersSettingsFile, settings.StoredOrderSettings{Settings: existing}); err != nil {
		return ErrWriteOrdersSettings
	}
	return nil
}

// resetDocument deletes one settings document. Reset-to-absent and
// reset-of-already-absent are the same observable outcome, so deletion
// failures are logged and never surfaced.
func (s *Store) resetDocument(loc string) {
	if err := s.fileStorage.Delete(loc); err != nil && !errors.Is(err, storage.ErrNotFound) {
		logrus.WithFields(logrus.Fields{"location": loc, "error": err}).
			Error("Failed to delete settings document")
	}
}
