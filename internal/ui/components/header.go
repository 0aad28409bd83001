// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/barberdesk/barberdesk-tui/internal/ui/styles"
)

// Header is the title bar above every page: brand on the left, signed-in
// user and active locale on the right.
type Header struct {
	Title  string
	User   string
	Locale string
	Width  int
}

// NewHeader creates a header with the given brand title.
func NewHeader(title string) *Header {
	return &Header{Title: title, Width: 80}
}

// SetWidth updates the available width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the bar. The user segment truncates first when space runs
// out; the brand always survives.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	brandStyle := lipgloss.NewStyle().Foreground(styles.Orange).Bold(true)
	infoStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	left := brandStyle.Render(" " + h.Title)

	info := h.Locale
	if h.User != "" {
		user := runewidth.Truncate(h.User, width/2, "…")
		if info != "" {
			info = user + " · " + info
		} else {
			info = user
		}
	}
	right := infoStyle.Render(info + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return lipgloss.NewStyle().
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.Overlay).
		Render(bar)
}
