// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components shared by the barberdesk views.
//
// This file renders the toast stack. Toasts are non-blocking: they stack in
// the top-right corner and auto-dismiss, so the user keeps interacting with
// the form underneath while a failure is displayed.
package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/barberdesk/barberdesk-tui/internal/toast"
	"github.com/barberdesk/barberdesk-tui/internal/ui/styles"
)

const toastMaxWidth = 50

// RenderToast renders a single toast box.
func RenderToast(t toast.Toast, width int) string {
	maxWidth := toastMaxWidth
	if width > 0 && width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 24 {
		maxWidth = 24
	}

	var accent lipgloss.AdaptiveColor
	var icon string
	switch t.Kind {
	case toast.KindError:
		accent = styles.Rose
		icon = styles.StatusIndicators.Error
	case toast.KindSuccess:
		accent = styles.Emerald
		icon = styles.StatusIndicators.Success
	default:
		accent = styles.Cyan
		icon = styles.StatusIndicators.Info
	}

	iconStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(styles.TextPrimary).Bold(true)

	content := iconStyle.Render(icon+" ") +
		titleStyle.Render(truncate(t.Title, maxWidth-6))

	if t.Description != "" {
		descStyle := lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(maxWidth - 6)
		content += "\n" + descStyle.Render(t.Description)
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(content)
}

// RenderToastStack renders the queue stacked vertically in insertion order,
// placed in the top-right corner.
func RenderToastStack(toasts []toast.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, RenderToast(t, width))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	return lipgloss.NewStyle().MarginRight(1).Render(stack)
}

// truncate shortens s to the given display width, ellipsis included.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
