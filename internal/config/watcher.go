// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk, so pointing the
// client at a staging API does not require a restart.
type Watcher struct {
	path     string
	onChange func(*Config)
	log      *slog.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	cancel   context.CancelFunc
}

// NewWatcher creates a watcher for the config file at path. onChange runs
// with the freshly loaded config after every valid change; invalid edits are
// logged and skipped, keeping the last good config active.
func NewWatcher(path string, onChange func(*Config), log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		log:      log,
		watcher:  fsw,
		debounce: 250 * time.Millisecond,
	}, nil
}

// Watch starts watching. Editors replace files on save, so the parent
// directory is watched and events are filtered by name.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.processEvents(ctx)
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	return w.watcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Debounce: editors fire several events per save.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config change ignored", "err", err)
		return
	}
	w.onChange(cfg)
}
