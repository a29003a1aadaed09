// Package store implements the settings store: it receives typed actions
// from the dispatcher and executes each as a synchronous read or
// read-modify-write cycle against the persisted settings documents.
package store

import (
	"time"

	"shopsettings/internal/dispatcher"
	"shopsettings/internal/settings"
	"shopsettings/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store routes settings actions to their handlers. It assumes a single
// serialized action stream (actions arrive from one goroutine) and
// performs no internal locking; two sequential actions against the same
// document complete in dispatch order.
type Store struct {
	fileStorage     storage.FileStorage
	generalSettings *settings.GeneralSettingsAccessor

	// FeedbackVisibility is the policy consulted by LoadFeedbackVisibility.
	// Defaults to settings.DefaultFeedbackVisibility.
	FeedbackVisibility settings.FeedbackVisibilityPolicy

	// Now supplies the current time. Overridable in tests.
	Now func() time.Time
}

// New creates a settings Store over the given storage and app-settings
// accessor.
func New(fileStorage storage.FileStorage, generalSettings *settings.GeneralSettingsAccessor) *Store {
	return &Store{
		fileStorage:        fileStorage,
		generalSettings:    generalSettings,
		FeedbackVisibility: settings.DefaultFeedbackVisibility,
		Now:                time.Now,
	}
}

// SupportsAction claims the settings action set.
func (s *Store) SupportsAction(action dispatcher.Action) bool {
	_, ok := action.(Action)
	return ok
}

// OnAction executes one settings action. The switch is total over the
// closed Action set; an unlisted action reaching here means the set grew
// without a handler, which is a wiring defect and fails loudly.
func (s *Store) OnAction(action dispatcher.Action) {
	switch a := action.(type) {
	case AddTrackingProvider:
		a.OnCompletion(s.addProvider(a.SiteID, a.ProviderName, "", storage.ShipmentProvidersFile))
	case LoadTrackingProvider:
		a.OnCompletion(s.loadProvider(a.SiteID, storage.ShipmentProvidersFile))
	case AddCustomTrackingProvider:
		a.OnCompletion(s.addProvider(a.SiteID, a.ProviderName, a.ProviderURL, storage.CustomShipmentProvidersFile))
	case LoadCustomTrackingProvider:
		a.OnCompletion(s.loadProvider(a.SiteID, storage.CustomShipmentProvidersFile))
	case ResetStoredProviders:
		s.resetStoredProviders(a.OnCompletion)

	case SetInstallationDateIfNecessary:
		a.OnCompletion(s.setInstallationDateIfNecessary(a.Date))
	case UpdateFeedbackStatus:
		a.OnCompletion(s.updateFeedbackStatus(a.Type, a.Status))
	case LoadFeedbackVisibility:
		a.OnCompletion(s.loadFeedbackVisibility(a.Type))
	case SetFeatureSwitchState:
		a.OnCompletion(s.setFeatureSwitchState(a.Flag, a.IsEnabled))
	case LoadFeatureSwitchState:
		a.OnCompletion(s.generalSettings.Settings().Flag(a.Flag), nil)
	case SetEligibilityErrorInfo:
		complete(a.OnCompletion, s.setEligibilityErrorInfo(a.ErrorInfo))
	case LoadEligibilityErrorInfo:
		a.OnCompletion(s.loadEligibilityErrorInfo())
	case ResetEligibilityErrorInfo:
		if err := s.setEligibilityErrorInfo(nil); err != nil {
			logrus.WithField("error", err).Error("Failed to reset eligibility error info")
		}
	case SetJetpackBannerLastDismissedTime:
		s.setJetpackBannerLastDismissedTime(a.Time)
	case LoadJetpackBannerVisibility:
		a.OnCompletion(s.loadJetpackBannerVisibility(a.CurrentTime, a.Location))
	case RememberCardReader:
		a.OnCompletion(s.rememberCardReader(a.CardReaderID))
	case ForgetCardReader:
		a.OnCompletion(s.forgetCardReader())
	case LoadCardReader:
		a.OnCompletion(s.loadCardReader())
	case SetFeatureAnnouncementDismissed:
		s.setFeatureAnnouncementDismissed(a.Campaign, a.RemindAfterDays, a.OnCompletion)
	case GetFeatureAnnouncementVisibility:
		a.OnCompletion(s.featureAnnouncementVisibility(a.Campaign))
	case MarkSiteHasAtLeastOneIPPTransactionFinished:
		s.markSiteHasIPPTransactionFinished(a.SiteID)
	case LoadSiteHasAtLeastOneIPPTransactionFinished:
		a.OnCompletion(s.generalSettings.Settings().SitesWithAtLeastOneIPPTransactionFinished.Contains(a.SiteID))

	case LoadOrdersSettings:
		a.OnCompletion(s.loadOrdersSettings(a.SiteID))
	case UpsertOrdersSettings:
		a.OnCompletion(s.upsertOrdersSettings(a))
	case ResetOrdersSettings:
		s.resetDocument(storage.OrdersSettingsFile)
	case LoadProductsSettings:
		a.OnCompletion(s.loadProductsSettings(a.SiteID))
	case UpsertProductsSettings:
		a.OnCompletion(s.upsertProductsSettings(a))
	case ResetProductsSettings:
		s.resetDocument(storage.ProductsSettingsFile)

	case SetTelemetryAvailability:
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.IsTelemetryAvailable = a.IsAvailable
			return ss
		}, nil)
	case SetTelemetryLastReportedTime:
		t := a.Time
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.TelemetryLastReportedTime = &t
			return ss
		}, nil)
	case GetTelemetryInfo:
		ss := s.getStoreSettings(a.SiteID)
		a.OnCompletion(ss.IsTelemetryAvailable, ss.TelemetryLastReportedTime)
	case SetSimplePaymentsTaxesToggleState:
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.AreSimplePaymentTaxesEnabled = a.IsOn
			return ss
		}, a.OnCompletion)
	case GetSimplePaymentsTaxesToggleState:
		a.OnCompletion(s.getStoreSettings(a.SiteID).AreSimplePaymentTaxesEnabled, nil)
	case SetPreferredInPersonPaymentGateway:
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.PreferredInPersonPaymentGateway = settings.PreferredGateway(a.Gateway)
			return ss
		}, nil)
	case GetPreferredInPersonPaymentGateway:
		a.OnCompletion(s.getStoreSettings(a.SiteID).PreferredInPersonPaymentGateway.Value())
	case ForgetPreferredInPersonPaymentGateway:
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.PreferredInPersonPaymentGateway = settings.ClearedGateway()
			return ss
		}, nil)
	case SetSkippedCashOnDeliveryOnboardingStep:
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.SkippedCashOnDeliveryOnboardingStep = true
			return ss
		}, nil)
	case GetSkippedCashOnDeliveryOnboardingStep:
		a.OnCompletion(s.getStoreSettings(a.SiteID).SkippedCashOnDeliveryOnboardingStep)
	case SetLastSelectedStatsTimeRange:
		s.updateStoreSettings(a.SiteID, func(ss settings.GeneralStoreSettings) settings.GeneralStoreSettings {
			ss.LastSelectedStatsTimeRange = a.TimeRange
			return ss
		}, nil)
	case LoadLastSelectedStatsTimeRange:
		a.OnCompletion(s.getStoreSettings(a.SiteID).LastSelectedStatsTimeRange)
	case ResetGeneralStoreSettings:
		s.resetDocument(storage.GeneralStoreSettingsFile)

	default:
		logrus.Panicf("settings store received an unsupported action %T", action)
	}
}

// complete invokes an optional error completion.
func complete(onCompletion func(error), err error) {
	if onCompletion != nil {
		onCompletion(err)
	}
}
