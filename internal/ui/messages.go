// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/barberdesk/barberdesk-tui/internal/api"
	"github.com/barberdesk/barberdesk-tui/internal/route"
	"github.com/barberdesk/barberdesk-tui/internal/toast"
)

// navigateMsg requests a navigation; the guard runs before the page swap.
type navigateMsg struct {
	loc route.Location
}

// toastMsg enqueues a toast from a page flow.
type toastMsg struct {
	kind        toast.Kind
	title       string
	description string
}

// signInResultMsg carries the outcome of a sign-in attempt.
type signInResultMsg struct {
	err error
}

// signUpResultMsg carries the outcome of an account registration.
type signUpResultMsg struct {
	err error
}

// forgotResultMsg carries the outcome of a recovery-mail request.
type forgotResultMsg struct {
	err error
}

// resetResultMsg carries the outcome of a password reset.
type resetResultMsg struct {
	err error
}

// profileResultMsg carries the outcome of a profile update.
type profileResultMsg struct {
	user api.User
	err  error
}

// avatarResultMsg carries the outcome of an avatar upload.
type avatarResultMsg struct {
	user api.User
	err  error
}
