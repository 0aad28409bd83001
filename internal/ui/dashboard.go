// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberdesk/barberdesk-tui/internal/route"
)

// dashboardPage is the signed-in landing view. It renders the account
// summary and dispatches to the profile page; the appointment listing
// itself lives server-side and is not fetched here.
type dashboardPage struct{}

func newDashboardPage() *dashboardPage {
	return &dashboardPage{}
}

func (p *dashboardPage) Update(app *App, msg tea.Msg) (page, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "p":
		return p, navigateTo(route.Loc(route.Profile))
	case "l":
		app.locale.Cycle()
		return p, nil
	case "ctrl+s":
		app.session.SignOut()
		return p, navigateTo(route.Loc(route.SignIn))
	case "q":
		app.quitting = true
		return p, tea.Quit
	}
	return p, nil
}

func (p *dashboardPage) View(app *App) string {
	t := app.theme
	loc := app.locale

	greeting := t.Label.Render(loc.T("dashboard.welcome"))
	var detail string
	if user, ok := app.session.User(); ok {
		greeting += " " + t.Accent.Render(user.Name)
		detail = t.Hint.Render(user.Email)
		if user.AvatarURL != "" {
			detail = lipgloss.JoinVertical(lipgloss.Left, detail, t.Hint.Render(user.AvatarURL))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(loc.T("dashboard.title")),
		greeting,
		detail,
		"",
		t.Hint.Render(loc.T("dashboard.hint")),
	)
	return t.Panel.Render(body)
}
