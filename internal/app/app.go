// Package app assembles the settings subsystem: configuration, storage,
// the app-settings accessor, the store, and the dispatcher it registers
// with. Hosts embed an App and dispatch actions through App.Dispatcher.
package app

import (
	"shopsettings/internal/config"
	"shopsettings/internal/dispatcher"
	"shopsettings/internal/settings"
	"shopsettings/internal/storage"
	"shopsettings/internal/store"

	"go.uber.org/dig"
)

// App holds the wired settings subsystem.
type App struct {
	Config     *config.Config
	Storage    storage.FileStorage
	Settings   *settings.GeneralSettingsAccessor
	Store      *store.Store
	Dispatcher *dispatcher.Dispatcher
}

// AppParams defines the dependencies for the App.
type AppParams struct {
	dig.In
	Config     *config.Config
	Storage    storage.FileStorage
	Settings   *settings.GeneralSettingsAccessor
	Store      *store.Store
	Dispatcher *dispatcher.Dispatcher
}

// NewApp is the constructor for App, with dependencies injected by dig.
// The store is registered with the dispatcher here, so a constructed App
// is ready to dispatch.
func NewApp(params AppParams) *App {
	params.Dispatcher.Register(params.Store)

	return &App{
		Config:     params.Config,
		Storage:    params.Storage,
		Settings:   params.Settings,
		Store:      params.Store,
		Dispatcher: params.Dispatcher,
	}
}

// BuildContainer provides every constructor of the subsystem into a dig
// container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	constructors := []any{
		config.Load,
		newDiskStorage,
		settings.NewGeneralSettingsAccessor,
		store.New,
		dispatcher.New,
		NewApp,
	}
	for _, c := range constructors {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}
	return container, nil
}

// newDiskStorage adapts the concrete disk backend to the FileStorage
// interface for injection.
func newDiskStorage(cfg *config.Config) (storage.FileStorage, error) {
	return storage.NewDiskStorage(cfg.DataDir)
}
