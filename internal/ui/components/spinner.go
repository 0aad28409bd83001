// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberdesk/barberdesk-tui/internal/ui/styles"
)

// Spinner is the in-flight indicator a form shows while its one remote call
// runs. ASCII frames keep it legible on terminals without glyph support.
type Spinner struct {
	spinner spinner.Model
	Label   string
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(styles.Orange)
	return Spinner{spinner: s, Label: label}
}

// Tick starts the animation. Batch it with the command that does the work.
func (s Spinner) Tick() tea.Cmd {
	return s.spinner.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the current frame plus the label.
func (s Spinner) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	return s.spinner.View() + " " + labelStyle.Render(s.Label)
}
