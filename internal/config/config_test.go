// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.API.URL)
	assert.Equal(t, DefaultTimeoutSecs, cfg.API.TimeoutSecs)
	assert.Equal(t, "pt-BR", cfg.UI.Locale)
}

func TestLoad_FileValuesOverrideDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
url = "https://staging.gobarber.example.com"
timeout_secs = 30

[ui]
locale = "en-US"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.gobarber.example.com", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "en-US", cfg.UI.Locale)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
url = "https://from-file.example.com"
`), 0o644))

	t.Setenv("BARBERDESK_API_URL", "https://from-env.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", cfg.API.URL)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
url = "not a url"
`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")

	cfg := Default()
	cfg.API.URL = "https://saved.example.com"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://saved.example.com", loaded.API.URL)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, Save(Default(), path))

	changed := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	cfg := Default()
	cfg.API.URL = "https://reloaded.example.com"
	require.NoError(t, Save(cfg, path))

	select {
	case got := <-changed:
		assert.Equal(t, "https://reloaded.example.com", got.API.URL)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not observe the change")
	}
}
