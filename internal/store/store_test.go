package store

import (
	"testing"

	"shopsettings/internal/dispatcher"
	"shopsettings/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportsActionClaimsOnlySettingsActions(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.SupportsAction(LoadCardReader{}))
	assert.True(t, s.SupportsAction(ResetGeneralStoreSettings{}))
	assert.False(t, s.SupportsAction("not an action"))
	assert.False(t, s.SupportsAction(struct{}{}))
}

// unhandledAction belongs to the action set but has no handler; routing
// it must fail loudly instead of being dropped.
type unhandledAction struct{}

func (unhandledAction) isAppSettingsAction() {}

func TestOnActionPanicsOnUnhandledAction(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Panics(t, func() {
		s.OnAction(unhandledAction{})
	})
}

func TestStoreBehindDispatcherLinearizesWrites(t *testing.T) {
	s, _ := newTestStore(t)
	d := dispatcher.New()
	d.Register(s)

	d.Dispatch(UpsertOrdersSettings{
		SiteID:              42,
		OrderStatusesFilter: []settings.OrderStatus{settings.OrderStatusProcessing},
		OnCompletion:        func(err error) { require.NoError(t, err) },
	})
	d.Dispatch(UpsertOrdersSettings{
		SiteID:              42,
		OrderStatusesFilter: []settings.OrderStatus{settings.OrderStatusCompleted},
		OnCompletion:        func(err error) { require.NoError(t, err) },
	})

	// The second dispatch sees and replaces the first one's write.
	var got settings.OrdersSetting
	d.Dispatch(LoadOrdersSettings{
		SiteID:       42,
		OnCompletion: func(setting settings.OrdersSetting, err error) { got = setting; require.NoError(t, err) },
	})
	assert.Equal(t, []settings.OrderStatus{settings.OrderStatusCompleted}, got.OrderStatusesFilter)
}

func TestDocumentFailuresAreIsolated(t *testing.T) {
	s, _ := newTestStore(t)

	s.OnAction(UpsertOrdersSettings{SiteID: 42, OnCompletion: func(err error) { require.NoError(t, err) }})
	s.OnAction(UpsertProductsSettings{SiteID: 42, Sort: "name_asc", OnCompletion: func(err error) { require.NoError(t, err) }})

	// Resetting orders leaves products untouched; each family owns its
	// document.
	s.OnAction(ResetOrdersSettings{})

	_, err := loadOrdersFor(s, 42)
	assert.ErrorIs(t, err, ErrNoOrdersSettings)

	got, err := loadProductsFor(s, 42)
	require.NoError(t, err)
	assert.Equal(t, "name_asc", got.Sort)
}
