package main

import (
	"fmt"
	"os"

	"campuseats/internal/api"
	"campuseats/internal/config"
	"campuseats/internal/directory"
	"campuseats/internal/geo"
	"campuseats/internal/i18n"
	"campuseats/internal/menu"
	"campuseats/internal/session"
)

// app wires the backend components for the non-interactive subcommands.
// Notifications go to stderr; the data layer stays identical to the
// interactive path.
type app struct {
	cfg      *config.Config
	kv       *session.KV
	sessions *session.Manager
	client   *api.Client
	dir      *directory.Directory
	viewer   *menu.Viewer
	locator  *geo.Locator
	tr       *i18n.Translator
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	kv, err := session.OpenKV(cfg.Data.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	sessions := session.NewManager(kv, logger, nil)
	sessions.Restore()

	notifier := api.NotifierFunc(func(severity api.Severity, message string) {
		fmt.Fprintf(os.Stderr, "%s: %s\n", severity, message)
	})
	client := api.NewClient(cfg.API.BaseURL, sessions, notifier,
		api.WithLogger(logger), api.WithTimeout(cfg.APITimeout()))

	lang := sessions.Language()
	if lang == "" {
		lang = cfg.UI.Language
	}

	lc := geo.LocatorConfig{Endpoint: cfg.Location.Endpoint}
	if cfg.Location.Lat != 0 || cfg.Location.Lon != 0 {
		lc.Fixed = &geo.Point{Lat: cfg.Location.Lat, Lon: cfg.Location.Lon}
	}

	return &app{
		cfg:      cfg,
		kv:       kv,
		sessions: sessions,
		client:   client,
		dir:      directory.New(client, logger),
		viewer:   menu.NewViewer(client, logger),
		locator:  geo.NewLocator(lc, logger),
		tr:       i18n.New(lang),
	}, nil
}

func (a *app) close() {
	_ = a.kv.Close()
}
