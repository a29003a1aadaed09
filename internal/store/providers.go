package store

import (
	"errors"

	"shopsettings/internal/settings"
	"shopsettings/internal/storage"
)

// addProvider records the provider selected for a site. The document
// keeps exactly one entry: a new selection replaces whatever was stored,
// for any site. (Whether multi-site selections should accumulate instead
// is an open product question; see DESIGN.md.)
func (s *Store) addProvider(siteID int64, providerName, providerURL, loc string) error {
	selection := []settings.PreselectedProvider{{
		SiteID:       siteID,
		ProviderName: providerName,
		ProviderURL:  providerURL,
	}}
	return s.fileStorage.Write(loc, selection)
}

// loadProvider reads the provider selected for a site from one of the
// two provider documents. An absent or unreadable document and an absent
// site entry surface identically as ErrNoSuchProvider.
func (s *Store) loadProvider(siteID int64, loc string) (settings.PreselectedProvider, error) {
	var saved []settings.PreselectedProvider
	if err := s.fileStorage.Read(loc, &saved); err != nil {
		return settings.PreselectedProvider{}, ErrNoSuchProvider
	}

	for _, provider := range saved {
		if provider.SiteID == siteID {
			return provider, nil
		}
	}
	return settings.PreselectedProvider{}, ErrNoSuchProvider
}

// resetStoredProviders deletes both provider documents. Already-absent
// documents count as success; a real deletion failure surfaces as
// ErrDeleteProvider.
func (s *Store) resetStoredProviders(onCompletion func(error)) {
	var failed bool
	for _, loc := range []string{storage.ShipmentProvidersFile, storage.CustomShipmentProvidersFile} {
		if err := s.fileStorage.Delete(loc); err != nil && !errors.Is(err, storage.ErrNotFound) {
			failed = true
		}
	}

	if onCompletion == nil {
		return
	}
	if failed {
		onCompletion(ErrDeleteProvider)
		return
	}
	onCompletion(nil)
}
