// Package storage provides the document persistence substrate for the
// settings engine: whole-document read/write/delete keyed by a logical
// location name. Each settings family owns one location; there are no
// cross-document transactions.
package storage

import "errors"

// ErrNotFound indicates no document exists at the requested location.
var ErrNotFound = errors.New("storage: document not found")

// ErrParse indicates a document exists but could not be decoded. Read
// paths in the store treat this the same as ErrNotFound, since both
// degrade to "use defaults or report absence".
var ErrParse = errors.New("storage: document is not decodable")

// FileStorage is the opaque structured-document capability the settings
// store is built on. Write replaces the whole document atomically; partial
// writes are never observable.
type FileStorage interface {
	// Read decodes the document at loc into out. Returns ErrNotFound if
	// no document exists, ErrParse if it cannot be decoded.
	Read(loc string, out any) error

	// Write atomically replaces the document at loc.
	Write(loc string, doc any) error

	// Delete removes the document at loc. Deleting an absent document
	// returns ErrNotFound.
	Delete(loc string) error
}

// Well-known document locations. These are stable on-disk names; changing
// them orphans previously persisted data.
const (
	ShipmentProvidersFile       = "shipment-providers.json"
	CustomShipmentProvidersFile = "custom-shipment-providers.json"
	GeneralStoreSettingsFile    = "general-store-settings.json"
	OrdersSettingsFile          = "orders-settings.json"
	ProductsSettingsFile        = "products-settings.json"
	GeneralAppSettingsFile      = "general-app-settings.json"
)
