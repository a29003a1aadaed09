// Package main provides settingsctl, an operator tool for the persisted
// settings documents: inspect what is on disk and reset individual
// document families.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"shopsettings/internal/app"
	"shopsettings/internal/config"
	"shopsettings/internal/storage"
	"shopsettings/internal/store"

	"github.com/sirupsen/logrus"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// documentLocations maps CLI document names to their on-disk locations.
var documentLocations = map[string]string{
	"providers":        storage.ShipmentProvidersFile,
	"custom-providers": storage.CustomShipmentProvidersFile,
	"orders":           storage.OrdersSettingsFile,
	"products":         storage.ProductsSettingsFile,
	"store-settings":   storage.GeneralStoreSettingsFile,
	"app-settings":     storage.GeneralAppSettingsFile,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitFailure)
	}

	container, err := app.BuildContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build container: %v\n", err)
		os.Exit(exitFailure)
	}

	err = container.Invoke(func(cfg *config.Config, a *app.App) error {
		config.SetupLogger(cfg)
		return run(a, os.Args[1], os.Args[2:])
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

func run(a *app.App, command string, args []string) error {
	switch command {
	case "inspect":
		if len(args) != 1 {
			usage()
			return errors.New("inspect requires exactly one document name")
		}
		return inspect(a, args[0])
	case "reset":
		if len(args) != 1 {
			usage()
			return errors.New("reset requires exactly one document name or 'all'")
		}
		return reset(a, args[0])
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// inspect pretty-prints one persisted document as stored, without
// interpreting it through the record types.
func inspect(a *app.App, document string) error {
	loc, ok := documentLocations[document]
	if !ok {
		return fmt.Errorf("unknown document %q", document)
	}

	var doc any
	if err := a.Storage.Read(loc, &doc); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("%s: no document persisted\n", document)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", document, err)
	}

	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

// reset routes through the store's reset actions so CLI resets behave
// exactly like in-app resets (best effort, log on failure).
func reset(a *app.App, document string) error {
	resettable := map[string]store.Action{
		"providers":      store.ResetStoredProviders{},
		"orders":         store.ResetOrdersSettings{},
		"products":       store.ResetProductsSettings{},
		"store-settings": store.ResetGeneralStoreSettings{},
	}

	if document == "all" {
		for name, action := range resettable {
			a.Dispatcher.Dispatch(action)
			logrus.Infof("Reset %s", name)
		}
		return nil
	}

	action, ok := resettable[document]
	if !ok {
		return fmt.Errorf("document %q cannot be reset", document)
	}
	a.Dispatcher.Dispatch(action)
	logrus.Infof("Reset %s", document)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  settingsctl inspect <document>
  settingsctl reset <document|all>

Documents: providers, custom-providers, orders, products, store-settings, app-settings
(reset supports: providers, orders, products, store-settings)`)
}
