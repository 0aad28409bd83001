// barberdesk - terminal client for the GoBarber appointment service.
//
// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/barberdesk/barberdesk-tui/internal/api"
	"github.com/barberdesk/barberdesk-tui/internal/config"
	"github.com/barberdesk/barberdesk-tui/internal/locale"
	"github.com/barberdesk/barberdesk-tui/internal/route"
	"github.com/barberdesk/barberdesk-tui/internal/session"
	"github.com/barberdesk/barberdesk-tui/internal/store"
	"github.com/barberdesk/barberdesk-tui/internal/toast"
	"github.com/barberdesk/barberdesk-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "barberdesk:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "config file path (default ~/.barberdesk/config.toml)")
		startRoute  = flag.String("route", "/", "start location, e.g. /dashboard or /reset-password?token=...")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("barberdesk %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	path := *configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	dir, err := cfg.Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	log, logFile, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.Info("starting", "version", Version, "api", cfg.API.URL)

	storePath, err := cfg.StorePath()
	if err != nil {
		return err
	}
	kv, err := store.OpenSQLite(storePath)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer kv.Close()

	client := api.NewClient(cfg.API.URL, log).WithTimeout(cfg.Timeout())

	sess := session.New(kv, client, log)

	loc := locale.Load(kv, log)
	if err := seedLocale(kv, loc, cfg.UI.Locale); err != nil {
		log.Warn("locale seed ignored", "err", err)
	}

	toasts := toast.NewQueue()
	defer toasts.Shutdown()

	// Live-reload the config so pointing at a staging API does not need a
	// restart. Only the service address is hot-swappable.
	watcher, err := config.NewWatcher(path, func(next *config.Config) {
		client.SetBaseURL(next.API.URL)
		log.Info("config reloaded", "api", next.API.URL)
	}, log)
	if err == nil {
		if err := watcher.Watch(); err != nil {
			log.Warn("config watch disabled", "err", err)
		}
		defer watcher.Close()
	} else {
		log.Warn("config watch disabled", "err", err)
	}

	app := ui.New(sess, client, toasts, loc, route.Parse(*startRoute), cfg.Timeout())
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// openLogger writes structured logs to the state directory, keeping the
// terminal free for the UI.
func openLogger(cfg *config.Config) (*slog.Logger, *os.File, error) {
	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), f, nil
}

// seedLocale applies the configured startup locale only when no preference
// was persisted yet; a saved choice always wins over the config file.
func seedLocale(kv store.Store, loc *locale.Manager, configured string) error {
	if configured == "" {
		return nil
	}
	saved, err := kv.Get(context.Background(), store.KeyLocale)
	if err != nil || saved != "" {
		return err
	}
	return loc.Set(configured)
}
