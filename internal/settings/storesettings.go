package settings

import (
	"encoding/json"
	"time"
)

// StatsTimeRange names a statistics dashboard time window.
type StatsTimeRange string

const (
	StatsRangeToday     StatsTimeRange = "today"
	StatsRangeThisWeek  StatsTimeRange = "thisWeek"
	StatsRangeThisMonth StatsTimeRange = "thisMonth"
	StatsRangeThisYear  StatsTimeRange = "thisYear"
)

// GatewayPreference is the tri-state preferred in-person payment gateway:
// never set, set to a gateway, or explicitly cleared. The zero value is
// the unset state.
type GatewayPreference struct {
	known bool
	value string
	set   bool
}

// PreferredGateway returns a preference explicitly set to name.
func PreferredGateway(name string) GatewayPreference {
	return GatewayPreference{known: true, value: name, set: true}
}

// ClearedGateway returns an explicitly cleared preference.
func ClearedGateway() GatewayPreference {
	return GatewayPreference{known: true}
}

// Value returns the chosen gateway and whether one is set.
func (g GatewayPreference) Value() (string, bool) {
	return g.value, g.set
}

// IsUnset reports whether no choice was ever recorded.
func (g GatewayPreference) IsUnset() bool {
	return !g.known
}

// IsCleared reports whether the preference was explicitly cleared.
func (g GatewayPreference) IsCleared() bool {
	return g.known && !g.set
}

type gatewayPreferenceJSON struct {
	Value *string `json:"value"`
}

// MarshalJSON encodes unset as null, cleared as {"value":null} and a
// chosen gateway as {"value":"<name>"} so the three states survive the
// round trip.
func (g GatewayPreference) MarshalJSON() ([]byte, error) {
	if !g.known {
		return []byte("null"), nil
	}
	doc := gatewayPreferenceJSON{}
	if g.set {
		doc.Value = &g.value
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the three-state encoding produced by MarshalJSON.
func (g *GatewayPreference) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = GatewayPreference{}
		return nil
	}
	var doc gatewayPreferenceJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Value == nil {
		*g = ClearedGateway()
		return nil
	}
	*g = PreferredGateway(*doc.Value)
	return nil
}

// GeneralStoreSettings is one site's operational settings. The zero value
// is the default record returned whenever nothing was persisted for a
// site.
type GeneralStoreSettings struct {
	IsTelemetryAvailable                bool              `json:"isTelemetryAvailable,omitempty"`
	TelemetryLastReportedTime           *time.Time        `json:"telemetryLastReportedTime,omitempty"`
	AreSimplePaymentTaxesEnabled        bool              `json:"areSimplePaymentTaxesEnabled,omitempty"`
	PreferredInPersonPaymentGateway     GatewayPreference `json:"preferredInPersonPaymentGateway"`
	SkippedCashOnDeliveryOnboardingStep bool              `json:"skippedCashOnDeliveryOnboardingStep,omitempty"`
	LastSelectedStatsTimeRange          StatsTimeRange    `json:"lastSelectedStatsTimeRange,omitempty"`
}

// GeneralStoreSettingsBySite is the general-store-settings document: one
// record per site.
type GeneralStoreSettingsBySite struct {
	StoreSettingsBySite map[int64]GeneralStoreSettings `json:"storeSettingsBySite"`
}
