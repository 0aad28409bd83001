// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale manages the UI language preference and the message catalog.
//
// The preference is one tag from a fixed set, persisted JSON-encoded under
// its own store key; an unset or unrecognized value falls back to the
// default tag.
package locale

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"github.com/barberdesk/barberdesk-tui/internal/store"
)

// Supported locales. The first entry is the fallback.
var Supported = []language.Tag{
	language.BrazilianPortuguese, // pt-BR
	language.AmericanEnglish,     // en-US
}

var matcher = language.NewMatcher(Supported)

// Manager holds the active locale and resolves message keys against the
// catalog. Construct with Load.
type Manager struct {
	store store.Store
	log   *slog.Logger

	mu  sync.RWMutex
	tag language.Tag
}

// Load creates a Manager with the persisted preference, or the fallback tag
// when nothing (or garbage) is stored.
func Load(s store.Store, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{store: s, log: log, tag: Supported[0]}

	raw, err := s.Get(context.Background(), store.KeyLocale)
	if err != nil || raw == "" {
		return m
	}

	var stored string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Warn("persisted locale is corrupt, using fallback", "err", err)
		return m
	}

	parsed, err := language.Parse(stored)
	if err != nil {
		log.Warn("persisted locale is invalid, using fallback", "tag", stored)
		return m
	}
	_, idx, _ := matcher.Match(parsed)
	m.tag = Supported[idx]
	return m
}

// Tag returns the active locale.
func (m *Manager) Tag() language.Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tag
}

// Set switches the active locale to the supported tag closest to raw and
// persists the choice.
func (m *Manager) Set(raw string) error {
	parsed, err := language.Parse(raw)
	if err != nil {
		return err
	}
	_, idx, _ := matcher.Match(parsed)
	tag := Supported[idx]

	encoded, err := json.Marshal(tag.String())
	if err != nil {
		return err
	}
	if err := m.store.Set(context.Background(), store.KeyLocale, string(encoded)); err != nil {
		return err
	}

	m.mu.Lock()
	m.tag = tag
	m.mu.Unlock()
	return nil
}

// Cycle switches to the next supported locale and persists it. Bound to a
// key in the TUI.
func (m *Manager) Cycle() error {
	current := m.Tag()
	for i, tag := range Supported {
		if tag == current {
			next := Supported[(i+1)%len(Supported)]
			return m.Set(next.String())
		}
	}
	return m.Set(Supported[0].String())
}

// T resolves a message key in the active locale. Unknown keys fall back to
// the default locale, then to the key itself, so a missing translation shows
// up on screen instead of crashing.
func (m *Manager) T(key string) string {
	tag := m.Tag()
	if msg, ok := catalog[tag][key]; ok {
		return msg
	}
	if msg, ok := catalog[Supported[0]][key]; ok {
		return msg
	}
	return key
}
