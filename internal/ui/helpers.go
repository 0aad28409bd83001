// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barberdesk/barberdesk-tui/internal/route"
	"github.com/barberdesk/barberdesk-tui/internal/toast"
)

// navigateTo returns a command that requests a navigation.
func navigateTo(loc route.Location) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{loc: loc}
	}
}

// showToast returns a command that enqueues a toast.
func showToast(kind toast.Kind, title, description string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{kind: kind, title: title, description: description}
	}
}
