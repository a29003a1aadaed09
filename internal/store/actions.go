package store

import (
	"time"

	"shopsettings/internal/settings"
)

// Action is the closed set of requests the settings store handles. Every
// concrete action type carries its parameters plus a completion receiver
// where one applies; completions are invoked synchronously before the
// action returns to the dispatcher.
type Action interface {
	isAppSettingsAction()
}

// --- Shipment tracking providers ---

// AddTrackingProvider records the preset provider selected for a site.
type AddTrackingProvider struct {
	SiteID       int64
	ProviderName string
	OnCompletion func(error)
}

// LoadTrackingProvider reads the preset provider selected for a site.
type LoadTrackingProvider struct {
	SiteID       int64
	OnCompletion func(settings.PreselectedProvider, error)
}

// AddCustomTrackingProvider records the custom provider selected for a
// site.
type AddCustomTrackingProvider struct {
	SiteID       int64
	ProviderName string
	ProviderURL  string
	OnCompletion func(error)
}

// LoadCustomTrackingProvider reads the custom provider selected for a
// site.
type LoadCustomTrackingProvider struct {
	SiteID       int64
	OnCompletion func(settings.PreselectedProvider, error)
}

// ResetStoredProviders deletes both provider documents. OnCompletion may
// be nil.
type ResetStoredProviders struct {
	OnCompletion func(error)
}

// --- General app settings ---

// SetInstallationDateIfNecessary persists Date as the installation date
// only when no date exists or Date is strictly earlier. The completion's
// bool reports whether the date changed.
type SetInstallationDateIfNecessary struct {
	Date         time.Time
	OnCompletion func(bool, error)
}

// UpdateFeedbackStatus replaces one feedback type's status, preserving
// all other feedback records.
type UpdateFeedbackStatus struct {
	Type         settings.FeedbackType
	Status       settings.FeedbackStatus
	OnCompletion func(error)
}

// LoadFeedbackVisibility evaluates the feedback visibility policy for one
// feedback type.
type LoadFeedbackVisibility struct {
	Type         settings.FeedbackType
	OnCompletion func(bool, error)
}

// SetFeatureSwitchState persists one named feature switch.
type SetFeatureSwitchState struct {
	Flag         settings.FeatureFlag
	IsEnabled    bool
	OnCompletion func(error)
}

// LoadFeatureSwitchState reads one named feature switch; an unset switch
// reports false.
type LoadFeatureSwitchState struct {
	Flag         settings.FeatureFlag
	OnCompletion func(bool, error)
}

// SetEligibilityErrorInfo persists the last eligibility failure, or
// clears it when ErrorInfo is nil. OnCompletion may be nil.
type SetEligibilityErrorInfo struct {
	ErrorInfo    *settings.EligibilityErrorInfo
	OnCompletion func(error)
}

// LoadEligibilityErrorInfo reads the last eligibility failure; fails with
// ErrNoEligibilityErrorInfo when none is recorded.
type LoadEligibilityErrorInfo struct {
	OnCompletion func(settings.EligibilityErrorInfo, error)
}

// ResetEligibilityErrorInfo clears the last eligibility failure.
type ResetEligibilityErrorInfo struct{}

// SetJetpackBannerLastDismissedTime records when the Jetpack benefits
// banner was dismissed.
type SetJetpackBannerLastDismissedTime struct {
	Time time.Time
}

// LoadJetpackBannerVisibility decides whether the Jetpack benefits banner
// should show, counting whole calendar days in Location.
type LoadJetpackBannerVisibility struct {
	CurrentTime  time.Time
	Location     *time.Location
	OnCompletion func(bool)
}

// RememberCardReader retains one card reader for automatic reconnection,
// replacing any previously remembered reader.
type RememberCardReader struct {
	CardReaderID string
	OnCompletion func(error)
}

// ForgetCardReader drops every remembered card reader.
type ForgetCardReader struct {
	OnCompletion func(error)
}

// LoadCardReader reads the remembered card reader; the completion gets an
// empty string when none is remembered.
type LoadCardReader struct {
	OnCompletion func(string, error)
}

// SetFeatureAnnouncementDismissed records that a campaign's announcement
// card was dismissed. With RemindAfterDays set, the card re-surfaces after
// that many days; without it nothing is persisted and the completion gets
// false. OnCompletion may be nil.
type SetFeatureAnnouncementDismissed struct {
	Campaign        settings.FeatureAnnouncementCampaign
	RemindAfterDays *int
	OnCompletion    func(bool, error)
}

// GetFeatureAnnouncementVisibility decides whether a campaign's
// announcement card should show.
type GetFeatureAnnouncementVisibility struct {
	Campaign     settings.FeatureAnnouncementCampaign
	OnCompletion func(bool, error)
}

// MarkSiteHasAtLeastOneIPPTransactionFinished records that a site
// completed an in-person payment. Idempotent.
type MarkSiteHasAtLeastOneIPPTransactionFinished struct {
	SiteID int64
}

// LoadSiteHasAtLeastOneIPPTransactionFinished reports whether a site ever
// completed an in-person payment.
type LoadSiteHasAtLeastOneIPPTransactionFinished struct {
	SiteID       int64
	OnCompletion func(bool)
}

// --- Orders settings ---

// LoadOrdersSettings reads one site's orders-list filters; fails with
// ErrNoOrdersSettings when nothing is stored for the site.
type LoadOrdersSettings struct {
	SiteID       int64
	OnCompletion func(settings.OrdersSetting, error)
}

// UpsertOrdersSettings replaces one site's orders-list filters wholesale,
// preserving every other site's record.
type UpsertOrdersSettings struct {
	SiteID              int64
	OrderStatusesFilter []settings.OrderStatus
	DateRangeFilter     *settings.OrderDateRangeFilter
	OnCompletion        func(error)
}

// ResetOrdersSettings deletes the orders-settings document. Best effort.
type ResetOrdersSettings struct{}

// --- Products settings ---

// LoadProductsSettings reads one site's products-list settings; fails
// with ErrNoProductsSettings when nothing is stored for the site.
type LoadProductsSettings struct {
	SiteID       int64
	OnCompletion func(settings.ProductsSetting, error)
}

// UpsertProductsSettings replaces one site's products-list settings
// wholesale, preserving every other site's record.
type UpsertProductsSettings struct {
	SiteID                int64
	Sort                  string
	StockStatusFilter     settings.ProductStockStatus
	ProductStatusFilter   settings.ProductStatus
	ProductTypeFilter     settings.ProductType
	ProductCategoryFilter *settings.ProductCategory
	OnCompletion          func(error)
}

// ResetProductsSettings deletes the products-settings document. Best
// effort.
type ResetProductsSettings struct{}

// --- General store settings ---

// SetTelemetryAvailability records whether telemetry is available for a
// site.
type SetTelemetryAvailability struct {
	SiteID      int64
	IsAvailable bool
}

// SetTelemetryLastReportedTime records when telemetry was last reported
// for a site.
type SetTelemetryLastReportedTime struct {
	SiteID int64
	Time   time.Time
}

// GetTelemetryInfo reads a site's telemetry availability and last report
// time.
type GetTelemetryInfo struct {
	SiteID       int64
	OnCompletion func(bool, *time.Time)
}

// SetSimplePaymentsTaxesToggleState records the simple-payments taxes
// toggle for a site.
type SetSimplePaymentsTaxesToggleState struct {
	SiteID       int64
	IsOn         bool
	OnCompletion func(error)
}

// GetSimplePaymentsTaxesToggleState reads the simple-payments taxes
// toggle for a site.
type GetSimplePaymentsTaxesToggleState struct {
	SiteID       int64
	OnCompletion func(bool, error)
}

// SetPreferredInPersonPaymentGateway records the preferred in-person
// payment gateway for a site.
type SetPreferredInPersonPaymentGateway struct {
	SiteID  int64
	Gateway string
}

// GetPreferredInPersonPaymentGateway reads the preferred in-person
// payment gateway; ok is false when none is set.
type GetPreferredInPersonPaymentGateway struct {
	SiteID       int64
	OnCompletion func(gateway string, ok bool)
}

// ForgetPreferredInPersonPaymentGateway explicitly clears the preferred
// in-person payment gateway for a site.
type ForgetPreferredInPersonPaymentGateway struct {
	SiteID int64
}

// SetSkippedCashOnDeliveryOnboardingStep marks the cash-on-delivery
// onboarding step as skipped for a site.
type SetSkippedCashOnDeliveryOnboardingStep struct {
	SiteID int64
}

// GetSkippedCashOnDeliveryOnboardingStep reads whether the
// cash-on-delivery onboarding step was skipped for a site.
type GetSkippedCashOnDeliveryOnboardingStep struct {
	SiteID       int64
	OnCompletion func(bool)
}

// SetLastSelectedStatsTimeRange records the statistics time range the
// user last selected for a site.
type SetLastSelectedStatsTimeRange struct {
	SiteID    int64
	TimeRange settings.StatsTimeRange
}

// LoadLastSelectedStatsTimeRange reads the statistics time range the user
// last selected; the completion gets an empty range when none was stored.
type LoadLastSelectedStatsTimeRange struct {
	SiteID       int64
	OnCompletion func(settings.StatsTimeRange)
}

// ResetGeneralStoreSettings deletes the general-store-settings document.
// Best effort.
type ResetGeneralStoreSettings struct{}

func (AddTrackingProvider) isAppSettingsAction()                         {}
func (LoadTrackingProvider) isAppSettingsAction()                        {}
func (AddCustomTrackingProvider) isAppSettingsAction()                   {}
func (LoadCustomTrackingProvider) isAppSettingsAction()                  {}
func (ResetStoredProviders) isAppSettingsAction()                        {}
func (SetInstallationDateIfNecessary) isAppSettingsAction()              {}
func (UpdateFeedbackStatus) isAppSettingsAction()                        {}
func (LoadFeedbackVisibility) isAppSettingsAction()                      {}
func (SetFeatureSwitchState) isAppSettingsAction()                       {}
func (LoadFeatureSwitchState) isAppSettingsAction()                      {}
func (SetEligibilityErrorInfo) isAppSettingsAction()                     {}
func (LoadEligibilityErrorInfo) isAppSettingsAction()                    {}
func (ResetEligibilityErrorInfo) isAppSettingsAction()                   {}
func (SetJetpackBannerLastDismissedTime) isAppSettingsAction()           {}
func (LoadJetpackBannerVisibility) isAppSettingsAction()                 {}
func (RememberCardReader) isAppSettingsAction()                          {}
func (ForgetCardReader) isAppSettingsAction()                            {}
func (LoadCardReader) isAppSettingsAction()                              {}
func (SetFeatureAnnouncementDismissed) isAppSettingsAction()             {}
func (GetFeatureAnnouncementVisibility) isAppSettingsAction()            {}
func (MarkSiteHasAtLeastOneIPPTransactionFinished) isAppSettingsAction() {}
func (LoadSiteHasAtLeastOneIPPTransactionFinished) isAppSettingsAction() {}
func (LoadOrdersSettings) isAppSettingsAction()                          {}
func (UpsertOrdersSettings) isAppSettingsAction()                        {}
func (ResetOrdersSettings) isAppSettingsAction()                         {}
func (LoadProductsSettings) isAppSettingsAction()                        {}
func (UpsertProductsSettings) isAppSettingsAction()                      {}
func (ResetProductsSettings) isAppSettingsAction()                       {}
func (SetTelemetryAvailability) isAppSettingsAction()                    {}
func (SetTelemetryLastReportedTime) isAppSettingsAction()                {}
func (GetTelemetryInfo) isAppSettingsAction()                            {}
func (SetSimplePaymentsTaxesToggleState) isAppSettingsAction()           {}
func (GetSimplePaymentsTaxesToggleState) isAppSettingsAction()           {}
func (SetPreferredInPersonPaymentGateway) isAppSettingsAction()          {}
func (GetPreferredInPersonPaymentGateway) isAppSettingsAction()          {}
func (ForgetPreferredInPersonPaymentGateway) isAppSettingsAction()       {}
func (SetSkippedCashOnDeliveryOnboardingStep) isAppSettingsAction()      {}
func (GetSkippedCashOnDeliveryOnboardingStep) isAppSettingsAction()      {}
func (SetLastSelectedStatsTimeRange) isAppSettingsAction()               {}
func (LoadLastSelectedStatsTimeRange) isAppSettingsAction()              {}
func (ResetGeneralStoreSettings) isAppSettingsAction()                   {}
