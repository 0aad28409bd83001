// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberdesk/barberdesk-tui/internal/locale"
	"github.com/barberdesk/barberdesk-tui/internal/route"
	"github.com/barberdesk/barberdesk-tui/internal/toast"
	"github.com/barberdesk/barberdesk-tui/internal/ui/components"
	"github.com/barberdesk/barberdesk-tui/internal/validate"
)

// resetPage redeems a recovery token (?token= on the route) for a new
// password.
type resetPage struct {
	fields components.FieldSet
	spin   components.Spinner
	token  string
	busy   bool
}

func newResetPage(loc *locale.Manager, token string) *resetPage {
	return &resetPage{
		token: token,
		fields: components.NewFieldSet(
			components.NewField("password", loc.T("reset.password"), true),
			components.NewField("password_confirmation", loc.T("reset.confirmation"), true),
		),
		spin: components.NewSpinner(loc.T("common.busy")),
	}
}

func (p *resetPage) schema(loc *locale.Manager) validate.Schema {
	return validate.Schema{
		validate.Required("password", loc.T("validate.password")),
		validate.EqualsField("password_confirmation", "password", loc.T("validate.confirmation")),
	}
}

func (p *resetPage) Update(app *App, msg tea.Msg) (page, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !p.busy {
		switch key.String() {
		case "tab", "down":
			p.fields.Next()
			return p, nil
		case "shift+tab", "up":
			p.fields.Prev()
			return p, nil
		case "enter":
			return p.submit(app)
		case "esc":
			return p, navigateTo(route.Loc(route.SignIn))
		}
	}

	if result, ok := msg.(resetResultMsg); ok {
		p.busy = false
		if result.err != nil {
			return p, showToast(toast.KindError,
				app.locale.T("reset.error.title"),
				app.locale.T("reset.error.desc"))
		}
		return p, navigateTo(route.Loc(route.SignIn))
	}

	if p.busy {
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.fields, cmd = p.fields.Update(msg)
	return p, cmd
}

func (p *resetPage) submit(app *App) (page, tea.Cmd) {
	p.fields.ClearErrors()

	values := p.fields.Values()
	if errs := p.schema(app.locale).Validate(values); !errs.Valid() {
		p.fields.SetErrors(errs)
		return p, nil
	}

	// A missing token is synthesized as a failure before any network call
	// and reported exactly like a remote one.
	if p.token == "" {
		return p, showToast(toast.KindError,
			app.locale.T("reset.error.title"),
			app.locale.T("reset.error.desc"))
	}

	p.busy = true
	password := values["password"]
	confirmation := values["password_confirmation"]
	token := p.token
	return p, tea.Batch(func() tea.Msg {
		ctx, cancel := app.ctx()
		defer cancel()
		return resetResultMsg{err: app.service.ResetPassword(ctx, password, confirmation, token)}
	}, p.spin.Tick())
}

func (p *resetPage) View(app *App) string {
	t := app.theme
	loc := app.locale

	form := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(loc.T("reset.title")),
		p.fields.View(),
		"",
		t.Hint.Render("enter: "+loc.T("reset.submit")),
	)
	if p.busy {
		form = lipgloss.JoinVertical(lipgloss.Left, form, p.spin.View())
	}
	return t.Panel.Render(form)
}
