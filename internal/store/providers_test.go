package store

import (
	"errors"
	"testing"

	"shopsettings/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadProviderFor(s *Store, siteID int64) (settings.PreselectedProvider, error) {
	var got settings.PreselectedProvider
	var gotErr error
	s.OnAction(LoadTrackingProvider{
		SiteID:       siteID,
		OnCompletion: func(p settings.PreselectedProvider, err error) { got = p; gotErr = err },
	})
	return got, gotErr
}

func TestAddThenLoadTrackingProvider(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(AddTrackingProvider{
		SiteID:       42,
		ProviderName: "USPS",
		OnCompletion: func(err error) { require.NoError(t, err) },
	})

	got, err := loadProviderFor(s, 42)
	require.NoError(t, err)
	assert.Equal(t, settings.PreselectedProvider{SiteID: 42, ProviderName: "USPS"}, got)
}

func TestLoadTrackingProviderBeforeAnyWrite(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := loadProviderFor(s, 42)
	assert.ErrorIs(t, err, ErrNoSuchProvider)
}

func TestLoadTrackingProviderForUnknownSite(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(AddTrackingProvider{SiteID: 42, ProviderName: "USPS", OnCompletion: func(err error) { require.NoError(t, err) }})

	_, err := loadProviderFor(s, 99)
	assert.ErrorIs(t, err, ErrNoSuchProvider)
}

func TestAddTrackingProviderReplacesStoredSelection(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(AddTrackingProvider{SiteID: 42, ProviderName: "USPS", OnCompletion: func(err error) { require.NoError(t, err) }})
	s.OnAction(AddTrackingProvider{SiteID: 42, ProviderName: "DHL", OnCompletion: func(err error) { require.NoError(t, err) }})

	got, err := loadProviderFor(s, 42)
	require.NoError(t, err)
	assert.Equal(t, "DHL", got.ProviderName)
}

func TestCustomProviderDocumentIsIndependent(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(AddTrackingProvider{SiteID: 42, ProviderName: "USPS", OnCompletion: func(err error) { require.NoError(t, err) }})
	s.OnAction(AddCustomTrackingProvider{
		SiteID:       42,
		ProviderName: "My Courier",
		ProviderURL:  "https://tracking.example.com/%1$s",
		OnCompletion: func(err error) { require.NoError(t, err) },
	})

	var custom settings.PreselectedProvider
	s.OnAction(LoadCustomTrackingProvider{
		SiteID:       42,
		OnCompletion: func(p settings.PreselectedProvider, err error) { custom = p; require.NoError(t, err) },
	})
	assert.Equal(t, "My Courier", custom.ProviderName)
	assert.Equal(t, "https://tracking.example.com/%1$s", custom.ProviderURL)

	// The preset selection is untouched by the custom write.
	preset, err := loadProviderFor(s, 42)
	require.NoError(t, err)
	assert.Equal(t, "USPS", preset.ProviderName)
}

func TestResetStoredProvidersDeletesBothDocuments(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(AddTrackingProvider{SiteID: 42, ProviderName: "USPS", OnCompletion: func(err error) { require.NoError(t, err) }})
	s.OnAction(AddCustomTrackingProvider{SiteID: 42, ProviderName: "My Courier", OnCompletion: func(err error) { require.NoError(t, err) }})

	s.OnAction(ResetStoredProviders{OnCompletion: func(err error) { require.NoError(t, err) }})

	_, err := loadProviderFor(s, 42)
	assert.ErrorIs(t, err, ErrNoSuchProvider)
}

func TestResetStoredProvidersWhenNothingStored(t *testing.T) {
	s, _ := newTestStore(t)

	var gotErr error
	s.OnAction(ResetStoredProviders{OnCompletion: func(err error) { gotErr = err }})
	assert.NoError(t, gotErr)
}

func TestResetStoredProvidersSurfacesDeletionFailure(t *testing.T) {
	s, failing := newFailingStore(t, nil, nil)

	s.OnAction(AddTrackingProvider{SiteID: 42, ProviderName: "USPS", OnCompletion: func(err error) { require.NoError(t, err) }})
	failing.deleteErr = errors.New("permission denied")

	var gotErr error
	s.OnAction(ResetStoredProviders{OnCompletion: func(err error) { gotErr = err }})
	assert.ErrorIs(t, gotErr, ErrDeleteProvider)
}

func TestResetStoredProvidersNilCompletion(t *testing.T) {
	s, _ := newTestStore(t)

	assert.NotPanics(t, func() {
		s.OnAction(ResetStoredProviders{})
	})
}
