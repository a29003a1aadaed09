package store

import (
	"shopsettings/internal/settings"
	"shopsettings/internal/storage"
)

func (s *Store) loadProductsSettings(siteID int64) (settings.ProductsSetting, error) {
	var saved settings.StoredProductSettings
	if err := s.fileStorage.Read(storage.ProductsSettingsFile, &saved); err != nil {
		return settings.ProductsSetting{}, ErrNoProductsSettings
	}

	setting, ok := saved.Settings[siteID]
	if !ok {
		return settings.ProductsSetting{}, ErrNoProductsSettings
	}
	return setting, nil
}

// upsertProductsSettings replaces the site's record with one built from
// the supplied fields, preserving every other site's record. As with
// orders, callers supply full record state.
func (s *Store) upsertProductsSettings(a UpsertProductsSettings) error {
	existing := make(map[int64]settings.ProductsSetting)
	var saved settings.StoredProductSettings
	if err := s.fileStorage.Read(storage.ProductsSettingsFile, &saved); err == nil && saved.Settings != nil {
		existing = saved.Settings
	}

	existing[a.SiteID] = settings.ProductsSetting{
		SiteID:                a.SiteID,
		Sort:                  a.Sort,
		StockStatusFilter:     a.StockStatusFilter,
		ProductStatusFilter:   a.ProductStatusFilter,
		ProductTypeFilter:     a.ProductTypeFilter,
		ProductCategoryFilter: a.ProductCategoryFilter,
	}

	if err := s.fileStorage.Write(storage.ProductsSettingsFile, settings.StoredProductSettings{Settings: existing}); err != nil {
		return ErrWriteProductsSettings
	}
	return nil
}
