package settings

import "time"

// PreselectedProvider is the user's shipment tracking provider selection.
// Preset and custom selections live in separate documents sharing this
// shape; custom selections carry a provider URL.
type PreselectedProvider struct {
	SiteID       int64  `json:"siteID"`
	ProviderName string `json:"providerName"`
	ProviderURL  string `json:"providerURL,omitempty"`
}

// OrderStatus is an order-list status filter value.
type OrderStatus string

// Order statuses used by the orders list filter.
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// OrderDateRange names a preset date window for the orders list filter.
type OrderDateRange string

const (
	OrderDateRangeToday      OrderDateRange = "today"
	OrderDateRangeLast2Days  OrderDateRange = "last2days"
	OrderDateRangeLast7Days  OrderDateRange = "last7days"
	OrderDateRangeLast30Days OrderDateRange = "last30days"
	OrderDateRangeCustom     OrderDateRange = "custom"
)

// OrderDateRangeFilter is the orders-list date filter. Start and End are
// only set for the custom range.
type OrderDateRangeFilter struct {
	Range OrderDateRange `json:"range"`
	Start *time.Time     `json:"start,omitempty"`
	End   *time.Time     `json:"end,omitempty"`
}

// OrdersSetting is one site's orders-list filter state. Upserts replace
// the whole record: fields a caller does not supply revert to their zero
// value rather than merging with what was stored.
type OrdersSetting struct {
	SiteID              int64                 `json:"siteID"`
	OrderStatusesFilter []OrderStatus         `json:"orderStatusesFilter,omitempty"`
	DateRangeFilter     *OrderDateRangeFilter `json:"dateRangeFilter,omitempty"`
}

// StoredOrderSettings is the orders-settings document: one record per site.
type StoredOrderSettings struct {
	Settings map[int64]OrdersSetting `json:"settings"`
}

// ProductStockStatus filters the products list by stock state.
type ProductStockStatus string

const (
	ProductStockInStock     ProductStockStatus = "instock"
	ProductStockOutOfStock  ProductStockStatus = "outofstock"
	ProductStockOnBackorder ProductStockStatus = "onbackorder"
)

// ProductStatus filters the products list by publication state.
type ProductStatus string

const (
	ProductStatusPublished ProductStatus = "publish"
	ProductStatusDraft     ProductStatus = "draft"
	ProductStatusPending   ProductStatus = "pending"
	ProductStatusPrivate   ProductStatus = "private"
)

// ProductType filters the products list by product kind.
type ProductType string

const (
	ProductTypeSimple   ProductType = "simple"
	ProductTypeGrouped  ProductType = "grouped"
	ProductTypeExternal ProductType = "external"
	ProductTypeVariable ProductType = "variable"
)

// ProductCategory filters the products list by one category.
type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductsSetting is one site's products-list sort and filter state. As
// with orders, upserts replace the whole record.
type ProductsSetting struct {
	SiteID                int64              `json:"siteID"`
	Sort                  string             `json:"sort,omitempty"`
	StockStatusFilter     ProductStockStatus `json:"stockStatusFilter,omitempty"`
	ProductStatusFilter   ProductStatus      `json:"productStatusFilter,omitempty"`
	ProductTypeFilter     ProductType        `json:"productTypeFilter,omitempty"`
	ProductCategoryFilter *ProductCategory   `json:"productCategoryFilter,omitempty"`
}

// StoredProductSettings is the products-settings document: one record per
// site.
type StoredProductSettings struct {
	Settings map[int64]ProductsSetting `json:"settings"`
}
