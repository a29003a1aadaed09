package store

import (
	"errors"
	"testing"
	"time"

	"shopsettings/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func telemetryInfo(s *Store, siteID int64) (bool, *time.Time) {
	var gotAvailable bool
	var gotTime *time.Time
	s.OnAction(GetTelemetryInfo{
		SiteID:       siteID,
		OnCompletion: func(available bool, reported *time.Time) { gotAvailable = available; gotTime = reported },
	})
	return gotAvailable, gotTime
}

func TestTelemetryDefaultsWhenNothingStored(t *testing.T) {
	s, _ := newTestStore(t)

	available, reported := telemetryInfo(s, 42)
	assert.False(t, available)
	assert.Nil(t, reported)
}

func TestTelemetrySetThenGet(t *testing.T) {
	s, _ := newTestStore(t)

	reportedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s.OnAction(SetTelemetryAvailability{SiteID: 42, IsAvailable: true})
	s.OnAction(SetTelemetryLastReportedTime{SiteID: 42, Time: reportedAt})

	available, reported := telemetryInfo(s, 42)
	assert.True(t, available)
	require.NotNil(t, reported)
	assert.Equal(t, reportedAt, reported.UTC())

	// A second site stays at defaults.
	available, reported = telemetryInfo(s, 7)
	assert.False(t, available)
	assert.Nil(t, reported)
}

func TestTelemetryMutationsComposeWithoutClobbering(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(SetTelemetryAvailability{SiteID: 42, IsAvailable: true})
	s.OnAction(SetTelemetryLastReportedTime{SiteID: 42, Time: testNow})

	// Setting the time must not reset availability: each mutator changes
	// one field of the same site record.
	available, reported := telemetryInfo(s, 42)
	assert.True(t, available)
	assert.NotNil(t, reported)
}

func TestSimplePaymentsTaxesToggle(t *testing.T) {
	s, _ := newTestStore(t)

	var got bool
	s.OnAction(GetSimplePaymentsTaxesToggleState{
		SiteID:       42,
		OnCompletion: func(isOn bool, err error) { got = isOn; require.NoError(t, err) },
	})
	assert.False(t, got)

	s.OnAction(SetSimplePaymentsTaxesToggleState{
		SiteID:       42,
		IsOn:         true,
		OnCompletion: func(err error) { require.NoError(t, err) },
	})

	s.OnAction(GetSimplePaymentsTaxesToggleState{
		SiteID:       42,
		OnCompletion: func(isOn bool, err error) { got = isOn; require.NoError(t, err) },
	})
	assert.True(t, got)
}

func TestSimplePaymentsTaxesToggleWriteFailure(t *testing.T) {
	s, _ := newFailingStore(t, errors.New("disk full"), nil)

	var gotErr error
	s.OnAction(SetSimplePaymentsTaxesToggleState{
		SiteID:       42,
		IsOn:         true,
		OnCompletion: func(err error) { gotErr = err },
	})
	assert.Error(t, gotErr)
}

func preferredGateway(s *Store, siteID int64) (string, bool) {
	var gotGateway string
	var gotOK bool
	s.OnAction(GetPreferredInPersonPaymentGateway{
		SiteID:       siteID,
		OnCompletion: func(gateway string, ok bool) { gotGateway = gateway; gotOK = ok },
	})
	return gotGateway, gotOK
}

func TestPreferredGatewayLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	// Never set.
	_, ok := preferredGateway(s, 42)
	assert.False(t, ok)

	// Set.
	s.OnAction(SetPreferredInPersonPaymentGateway{SiteID: 42, Gateway: "stripe"})
	gateway, ok := preferredGateway(s, 42)
	assert.True(t, ok)
	assert.Equal(t, "stripe", gateway)

	// Explicitly forgotten.
	s.OnAction(ForgetPreferredInPersonPaymentGateway{SiteID: 42})
	_, ok = preferredGateway(s, 42)
	assert.False(t, ok)

	// The persisted record distinguishes cleared from unset.
	ss := s.getStoreSettings(42)
	assert.True(t, ss.PreferredInPersonPaymentGateway.IsCleared())
}

func TestForgetGatewayPreservesOtherFields(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(SetTelemetryAvailability{SiteID: 42, IsAvailable: true})
	s.OnAction(SetPreferredInPersonPaymentGateway{SiteID: 42, Gateway: "wcpay"})
	s.OnAction(ForgetPreferredInPersonPaymentGateway{SiteID: 42})

	available, _ := telemetryInfo(s, 42)
	assert.True(t, available)
}

func TestSkippedCashOnDeliveryOnboardingStep(t *testing.T) {
	s, _ := newTestStore(t)

	var got bool
	s.OnAction(GetSkippedCashOnDeliveryOnboardingStep{
		SiteID:       42,
		OnCompletion: func(skipped bool) { got = skipped },
	})
	assert.False(t, got)

	s.OnAction(SetSkippedCashOnDeliveryOnboardingStep{SiteID: 42})

	s.OnAction(GetSkippedCashOnDeliveryOnboardingStep{
		SiteID:       42,
		OnCompletion: func(skipped bool) { got = skipped },
	})
	assert.True(t, got)
}

func TestLastSelectedStatsTimeRange(t *testing.T) {
	s, _ := newTestStore(t)

	var got settings.StatsTimeRange
	s.OnAction(LoadLastSelectedStatsTimeRange{
		SiteID:       42,
		OnCompletion: func(timeRange settings.StatsTimeRange) { got = timeRange },
	})
	assert.Empty(t, got)

	s.OnAction(SetLastSelectedStatsTimeRange{SiteID: 42, TimeRange: settings.StatsRangeThisWeek})

	s.OnAction(LoadLastSelectedStatsTimeRange{
		SiteID:       42,
		OnCompletion: func(timeRange settings.StatsTimeRange) { got = timeRange },
	})
	assert.Equal(t, settings.StatsRangeThisWeek, got)
}

func TestResetGeneralStoreSettings(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(SetTelemetryAvailability{SiteID: 42, IsAvailable: true})
	s.OnAction(SetSkippedCashOnDeliveryOnboardingStep{SiteID: 7})

	s.OnAction(ResetGeneralStoreSettings{})

	available, _ := telemetryInfo(s, 42)
	assert.False(t, available)

	var skipped bool
	s.OnAction(GetSkippedCashOnDeliveryOnboardingStep{
		SiteID:       7,
		OnCompletion: func(got bool) { skipped = got },
	})
	assert.False(t, skipped)
}

func TestStoreSettingsUpdatesPreserveOtherSites(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(SetPreferredInPersonPaymentGateway{SiteID: 1, Gateway: "stripe"})
	s.OnAction(SetPreferredInPersonPaymentGateway{SiteID: 2, Gateway: "wcpay"})

	gateway, ok := preferredGateway(s, 1)
	assert.True(t, ok)
	assert.Equal(t, "stripe", gateway)

	gateway, ok = preferredGateway(s, 2)
	assert.True(t, ok)
	assert.Equal(t, "wcpay", gateway)
}
