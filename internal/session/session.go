// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the client's authentication state: the session token
// and the signed-in user's profile record.
//
// The container hydrates once from the persistent store at construction and
// writes every mutation back through the store before touching memory, so a
// crash between the two leaves the store authoritative on next startup.
// Consumers receive read-only snapshots plus the three mutator operations;
// nothing else may hold the token.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/barberdesk/barberdesk-tui/internal/api"
	"github.com/barberdesk/barberdesk-tui/internal/store"
)

// Authenticator is the slice of the API client the container drives: the
// sign-in call plus the default-credential switch.
type Authenticator interface {
	CreateSession(ctx context.Context, email, password string) (api.Credentials, error)
	SetToken(token string)
	ClearToken()
}

// Container holds the current session. The zero value is unusable; construct
// with New.
type Container struct {
	store store.Store
	auth  Authenticator
	log   *slog.Logger

	mu    sync.RWMutex
	token string
	user  api.User
}

// New creates a Container hydrated from the store. If both the token and
// user keys are present, the persisted session is restored and the token is
// applied as the API client's default credential; if either is missing, the
// container starts empty. Hydration runs exactly once, here.
func New(s store.Store, auth Authenticator, log *slog.Logger) *Container {
	if log == nil {
		log = slog.Default()
	}
	c := &Container{store: s, auth: auth, log: log}

	ctx := context.Background()
	token, err := s.Get(ctx, store.KeyToken)
	if err != nil {
		log.Error("session hydration failed", "key", store.KeyToken, "err", err)
		return c
	}
	rawUser, err := s.Get(ctx, store.KeyUser)
	if err != nil {
		log.Error("session hydration failed", "key", store.KeyUser, "err", err)
		return c
	}

	// Both-or-neither: a store holding only one of the two values is treated
	// as holding no session at all.
	if token == "" || rawUser == "" {
		return c
	}

	var user api.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Error("persisted user record is corrupt, discarding session", "err", err)
		return c
	}

	c.token = token
	c.user = user
	auth.SetToken(token)
	return c
}

// SignIn exchanges the credentials for a session, persists it, and applies
// the token as the default outbound credential. On rejection or transport
// failure the error propagates unchanged and no state is touched; the page
// flow owns user-visible reporting.
func (c *Container) SignIn(ctx context.Context, email, password string) error {
	creds, err := c.auth.CreateSession(ctx, email, password)
	if err != nil {
		return err
	}

	rawUser, err := json.Marshal(creds.User)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, store.KeyToken, creds.Token); err != nil {
		return err
	}
	if err := c.store.Set(ctx, store.KeyUser, string(rawUser)); err != nil {
		return err
	}

	c.auth.SetToken(creds.Token)

	c.mu.Lock()
	c.token = creds.Token
	c.user = creds.User
	c.mu.Unlock()
	return nil
}

// SignOut deletes both store keys and clears the in-memory session. It is
// side-effect-only and never fails; store errors are logged and the
// in-memory state is cleared regardless.
func (c *Container) SignOut() {
	ctx := context.Background()
	if err := c.store.Delete(ctx, store.KeyToken); err != nil {
		c.log.Error("sign-out: deleting token failed", "err", err)
	}
	if err := c.store.Delete(ctx, store.KeyUser); err != nil {
		c.log.Error("sign-out: deleting user failed", "err", err)
	}

	c.auth.ClearToken()

	c.mu.Lock()
	c.token = ""
	c.user = api.User{}
	c.mu.Unlock()
}

// UpdateUser replaces the user record, keeping the current token. It does
// not check that a session is active; calling it signed-out is a caller
// error and persists the record against an empty token.
func (c *Container) UpdateUser(user api.User) {
	rawUser, err := json.Marshal(user)
	if err != nil {
		c.log.Error("update user: encoding failed", "err", err)
		return
	}
	if err := c.store.Set(context.Background(), store.KeyUser, string(rawUser)); err != nil {
		c.log.Error("update user: persisting failed", "err", err)
	}

	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
}

// User returns the signed-in user and whether a session is active.
func (c *Container) User() (api.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user, c.token != ""
}

// Token returns the current session token, or "" when signed out.
func (c *Container) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IsAuthenticated reports whether a session is active.
func (c *Container) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}
