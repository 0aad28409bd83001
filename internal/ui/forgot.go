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

// forgotPage requests a password-recovery e-mail. On success the user stays
// here; the recovery link arrives out of band.
type forgotPage struct {
	fields components.FieldSet
	spin   components.Spinner
	busy   bool
}

func newForgotPage(loc *locale.Manager) *forgotPage {
	return &forgotPage{
		fields: components.NewFieldSet(
			components.NewField("email", loc.T("signin.email"), false),
		),
		spin: components.NewSpinner(loc.T("common.busy")),
	}
}

func (p *forgotPage) schema(loc *locale.Manager) validate.Schema {
	return validate.Schema{
		validate.Required("email", loc.T("validate.email")),
		validate.Email("email", loc.T("validate.email_fmt")),
	}
}

func (p *forgotPage) Update(app *App, msg tea.Msg) (page, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !p.busy {
		switch key.String() {
		case "enter":
			return p.submit(app)
		case "esc":
			return p, navigateTo(route.Loc(route.SignIn))
		}
	}

	if result, ok := msg.(forgotResultMsg); ok {
		p.busy = false
		if result.err != nil {
			return p, showToast(toast.KindError,
				app.locale.T("forgot.error.title"),
				app.locale.T("forgot.error.desc"))
		}
		return p, showToast(toast.KindSuccess,
			app.locale.T("forgot.success.title"),
			app.locale.T("forgot.success.desc"))
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

func (p *forgotPage) submit(app *App) (page, tea.Cmd) {
	p.fields.ClearErrors()

	values := p.fields.Values()
	if errs := p.schema(app.locale).Validate(values); !errs.Valid() {
		p.fields.SetErrors(errs)
		return p, nil
	}

	p.busy = true
	email := values["email"]
	return p, tea.Batch(func() tea.Msg {
		ctx, cancel := app.ctx()
		defer cancel()
		return forgotResultMsg{err: app.service.ForgotPassword(ctx, email)}
	}, p.spin.Tick())
}

func (p *forgotPage) View(app *App) string {
	t := app.theme
	loc := app.locale

	form := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(loc.T("forgot.title")),
		p.fields.View(),
		"",
		t.Hint.Render("enter: "+loc.T("forgot.submit")+" • esc: "+loc.T("forgot.back")),
	)
	if p.busy {
		form = lipgloss.JoinVertical(lipgloss.Left, form, p.spin.View())
	}
	return t.Panel.Render(form)
}
