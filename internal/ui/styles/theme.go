// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the styles the views share.
type Theme struct {
	ColorProfile termenv.Profile

	Title      lipgloss.Style
	Label      lipgloss.Style
	Hint       lipgloss.Style
	FieldError lipgloss.Style
	Panel      lipgloss.Style
	Accent     lipgloss.Style
}

// NewTheme builds the theme for the detected terminal color profile.
func NewTheme() *Theme {
	return &Theme{
		ColorProfile: termenv.ColorProfile(),

		Title: lipgloss.NewStyle().
			Foreground(TextPrimary).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(TextSecondary),

		Hint: lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true),

		FieldError: lipgloss.NewStyle().
			Foreground(Rose),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(1, 2),

		Accent: lipgloss.NewStyle().
			Foreground(Orange).
			Bold(true),
	}
}
