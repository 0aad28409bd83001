// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberdesk/barberdesk-tui/internal/api"
	"github.com/barberdesk/barberdesk-tui/internal/store"
)

// memStore is an in-memory store.Store for tests.
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

// fakeAuth records the credential state the container drives.
type fakeAuth struct {
	creds     api.Credentials
	err       error
	token     string
	signIns   int
	tokenSets int
}

func (f *fakeAuth) CreateSession(_ context.Context, email, password string) (api.Credentials, error) {
	f.signIns++
	if f.err != nil {
		return api.Credentials{}, f.err
	}
	return f.creds, nil
}

func (f *fakeAuth) SetToken(token string) { f.token = token; f.tokenSets++ }
func (f *fakeAuth) ClearToken()           { f.token = "" }

var testUser = api.User{
	ID:    "user123",
	Name:  "John Doe",
	Email: "johndoe@example.com",
}

func TestHydration_BothKeysPresent(t *testing.T) {
	s := newMemStore()
	rawUser, _ := json.Marshal(testUser)
	s.data[store.KeyToken] = "token-123"
	s.data[store.KeyUser] = string(rawUser)

	auth := &fakeAuth{}
	c := New(s, auth, nil)

	user, ok := c.User()
	require.True(t, ok)
	assert.Equal(t, "johndoe@example.com", user.Email)
	assert.Equal(t, "token-123", c.Token())
	assert.Equal(t, "token-123", auth.token, "token must be applied as default credential")
}

func TestHydration_SingleKeyYieldsEmptySession(t *testing.T) {
	for _, key := range []string{store.KeyToken, store.KeyUser} {
		s := newMemStore()
		s.data[key] = "something"

		c := New(s, &fakeAuth{}, nil)

		_, ok := c.User()
		assert.False(t, ok, "session must be empty with only %s present", key)
		assert.False(t, c.IsAuthenticated())
	}
}

func TestHydration_EmptyStore(t *testing.T) {
	auth := &fakeAuth{}
	c := New(newMemStore(), auth, nil)

	assert.False(t, c.IsAuthenticated())
	assert.Zero(t, auth.tokenSets)
}

func TestSignIn_PersistsAndAppliesToken(t *testing.T) {
	s := newMemStore()
	auth := &fakeAuth{creds: api.Credentials{Token: "token-123", User: testUser}}
	c := New(s, auth, nil)

	require.NoError(t, c.SignIn(context.Background(), "johndoe@example.com", "123456"))

	assert.Equal(t, "token-123", s.data[store.KeyToken])

	rawUser, _ := json.Marshal(testUser)
	assert.Equal(t, string(rawUser), s.data[store.KeyUser])

	user, ok := c.User()
	require.True(t, ok)
	assert.Equal(t, "johndoe@example.com", user.Email)
	assert.Equal(t, "token-123", auth.token)
}

func TestSignIn_FailurePropagatesAndLeavesStateUntouched(t *testing.T) {
	s := newMemStore()
	auth := &fakeAuth{err: api.ErrUnauthorized}
	c := New(s, auth, nil)

	err := c.SignIn(context.Background(), "johndoe@example.com", "wrong")
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	assert.False(t, c.IsAuthenticated())
	assert.Empty(t, s.data)
}

func TestSignOut_ClearsStoreAndMemory(t *testing.T) {
	s := newMemStore()
	auth := &fakeAuth{creds: api.Credentials{Token: "token-123", User: testUser}}
	c := New(s, auth, nil)
	require.NoError(t, c.SignIn(context.Background(), "johndoe@example.com", "123456"))

	c.SignOut()

	assert.Empty(t, s.data)
	_, ok := c.User()
	assert.False(t, ok)
	assert.Empty(t, auth.token)

	// Signing out while signed out is harmless.
	c.SignOut()
}

func TestUpdateUser_ReplacesUserKeepsToken(t *testing.T) {
	s := newMemStore()
	auth := &fakeAuth{creds: api.Credentials{Token: "token-123", User: testUser}}
	c := New(s, auth, nil)
	require.NoError(t, c.SignIn(context.Background(), "johndoe@example.com", "123456"))

	updated := api.User{ID: "user123", Name: "Jane Doe", Email: "janedoe@example.com"}
	c.UpdateUser(updated)

	rawUser, _ := json.Marshal(updated)
	assert.Equal(t, string(rawUser), s.data[store.KeyUser])
	assert.Equal(t, "token-123", s.data[store.KeyToken], "token key must be untouched")

	user, ok := c.User()
	require.True(t, ok)
	assert.Equal(t, updated, user)
	assert.Equal(t, "token-123", c.Token())
}
