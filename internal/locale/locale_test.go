// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/barberdesk/barberdesk-tui/internal/store"
)

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (m *memStore) Get(_ context.Context, key string) (string, error) { return m.data[key], nil }
func (m *memStore) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}
func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memStore) Close() error { return nil }

func TestLoad_DefaultsToPortuguese(t *testing.T) {
	m := Load(newMemStore(), nil)
	assert.Equal(t, language.BrazilianPortuguese, m.Tag())
}

func TestLoad_RestoresPersistedTag(t *testing.T) {
	s := newMemStore()
	s.data[store.KeyLocale] = `"en-US"`

	m := Load(s, nil)
	assert.Equal(t, language.AmericanEnglish, m.Tag())
}

func TestLoad_GarbageFallsBack(t *testing.T) {
	s := newMemStore()
	s.data[store.KeyLocale] = `not-json`

	m := Load(s, nil)
	assert.Equal(t, language.BrazilianPortuguese, m.Tag())
}

func TestSet_PersistsJSONEncodedTag(t *testing.T) {
	s := newMemStore()
	m := Load(s, nil)

	require.NoError(t, m.Set("en-US"))
	assert.Equal(t, language.AmericanEnglish, m.Tag())
	assert.Equal(t, `"en-US"`, s.data[store.KeyLocale])
}

func TestCycle_WalksSupportedSet(t *testing.T) {
	m := Load(newMemStore(), nil)
	start := m.Tag()

	require.NoError(t, m.Cycle())
	assert.NotEqual(t, start, m.Tag())

	require.NoError(t, m.Cycle())
	assert.Equal(t, start, m.Tag())
}

func TestT_FallsBackAcrossLocales(t *testing.T) {
	m := Load(newMemStore(), nil)

	assert.Equal(t, "Faça seu logon", m.T("signin.title"))
	require.NoError(t, m.Set("en-US"))
	assert.Equal(t, "Sign in", m.T("signin.title"))

	// Unknown keys surface themselves rather than crashing.
	assert.Equal(t, "no.such.key", m.T("no.such.key"))
}
