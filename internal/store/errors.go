package store

import "errors"

// The store's stable error vocabulary. Read paths without a sensible
// default surface the No* sentinels; write paths surface the Write*
// sentinels. Reset paths never surface deletion errors.
var (
	// ErrNoSuchProvider means no shipment provider was ever selected for
	// the site (or the providers document is absent or unreadable).
	ErrNoSuchProvider = errors.New("appsettings: no preselected shipment provider")

	// ErrDeleteProvider means a stored-providers document could not be
	// removed.
	ErrDeleteProvider = errors.New("appsettings: failed to delete stored shipment providers")

	// ErrNoOrdersSettings means no orders settings exist for the site.
	ErrNoOrdersSettings = errors.New("appsettings: no orders settings for site")

	// ErrNoProductsSettings means no products settings exist for the site.
	ErrNoProductsSettings = errors.New("appsettings: no products settings for site")

	// ErrWriteOrdersSettings means the orders-settings document could not
	// be written.
	ErrWriteOrdersSettings = errors.New("appsettings: failed to write orders settings")

	// ErrWriteProductsSettings means the products-settings document could
	// not be written.
	ErrWriteProductsSettings = errors.New("appsettings: failed to write products settings")

	// ErrNoEligibilityErrorInfo means no eligibility failure is recorded.
	ErrNoEligibilityErrorInfo = errors.New("appsettings: no eligibility error info")
)
