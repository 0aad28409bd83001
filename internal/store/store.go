// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the persistent key-value store backing session,
// locale, and other client-side state that must survive restarts.
package store

import "context"

// Store is a synchronous string key-value store.
//
// Get returns the empty string (and a nil error) for a missing key, so
// callers distinguish "unset" from "set to empty" by never storing empty
// values.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Well-known keys. The session keys are written and cleared together; a
// store holding only one of them is treated as holding neither.
const (
	KeyToken  = "session.token"
	KeyUser   = "session.user"
	KeyLocale = "locale"
)
