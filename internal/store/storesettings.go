package store

import (
	"shopsettings/internal/settings"
	"shopsettings/internal/storage"

	"github.com/sirupsen/logrus"
)

// getStoreSettings reads one site's store settings. Never fails: an
// absent document, an unreadable document, and an absent site entry all
// yield the default record.
func (s *Store) getStoreSettings(siteID int64) settings.GeneralStoreSettings {
	var saved settings.GeneralStoreSettingsBySite
	if err := s.fileStorage.Read(storage.GeneralStoreSettingsFile, &saved); err != nil {
		return settings.GeneralStoreSettings{}
	}

	return saved.StoreSettingsBySite[siteID]
}

// updateStoreSettings is the single partial-update primitive for store
// settings: read the site's current-or-default record, apply transform,
// and write the whole record back merged into the all-sites map. Every
// store-settings mutator goes through here. onCompletion may be nil; in
// that case a write failure is logged.
func (s *Store) updateStoreSettings(
	siteID int64,
	transform func(settings.GeneralStoreSettings) settings.GeneralStoreSettings,
	onCompletion func(error),
) {
	bySite := make(map[int64]settings.GeneralStoreSettings)
	var saved settings.GeneralStoreSettingsBySite
	if err := s.fileStorage.Read(storage.GeneralStoreSettingsFile, &saved); err == nil && saved.StoreSettingsBySite != nil {
		bySite = saved.StoreSettingsBySite
	}

	bySite[siteID] = transform(bySite[siteID])

	err := s.fileStorage.Write(storage.GeneralStoreSettingsFile,
		settings.GeneralStoreSettingsBySite{StoreSettingsBySite: bySite})
	if err != nil && onCompletion == nil {
		logrus.WithFields(logrus.Fields{"site_id": siteID, "error": err}).
			Error("Failed to save store settings")
	}
	if onCompletion != nil {
		onCompletion(err)
	}
}
