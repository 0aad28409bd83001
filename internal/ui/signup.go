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

// signUpPage registers a new account: name + email + password.
type signUpPage struct {
	fields components.FieldSet
	spin   components.Spinner
	busy   bool
}

func newSignUpPage(loc *locale.Manager) *signUpPage {
	return &signUpPage{
		fields: components.NewFieldSet(
			components.NewField("name", loc.T("signup.name"), false),
			components.NewField("email", loc.T("signin.email"), false),
			components.NewField("password", loc.T("signin.password"), true),
		),
		spin: components.NewSpinner(loc.T("common.busy")),
	}
}

func (p *signUpPage) schema(loc *locale.Manager) validate.Schema {
	return validate.Schema{
		validate.Required("name", loc.T("validate.name")),
		validate.Required("email", loc.T("validate.email")),
		validate.Email("email", loc.T("validate.email_fmt")),
		validate.MinLen("password", 6, loc.T("validate.password_min")),
	}
}

func (p *signUpPage) Update(app *App, msg tea.Msg) (page, tea.Cmd) {
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

	if result, ok := msg.(signUpResultMsg); ok {
		p.busy = false
		if result.err != nil {
			return p, showToast(toast.KindError,
				app.locale.T("signup.error.title"),
				app.locale.T("signup.error.desc"))
		}
		// Back to sign-in; the new account is not signed in automatically.
		return p, tea.Batch(
			navigateTo(route.Loc(route.SignIn)),
			showToast(toast.KindSuccess,
				app.locale.T("signup.success.title"),
				app.locale.T("signup.success.desc")),
		)
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

func (p *signUpPage) submit(app *App) (page, tea.Cmd) {
	p.fields.ClearErrors()

	values := p.fields.Values()
	if errs := p.schema(app.locale).Validate(values); !errs.Valid() {
		p.fields.SetErrors(errs)
		return p, nil
	}

	p.busy = true
	name, email, password := values["name"], values["email"], values["password"]
	return p, tea.Batch(func() tea.Msg {
		ctx, cancel := app.ctx()
		defer cancel()
		return signUpResultMsg{err: app.service.CreateUser(ctx, name, email, password)}
	}, p.spin.Tick())
}

func (p *signUpPage) View(app *App) string {
	t := app.theme
	loc := app.locale

	form := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(loc.T("signup.title")),
		p.fields.View(),
		"",
		t.Hint.Render("enter: "+loc.T("signup.submit")+" • esc: "+loc.T("signup.back")),
	)
	if p.busy {
		form = lipgloss.JoinVertical(lipgloss.Left, form, p.spin.View())
	}
	return t.Panel.Render(form)
}
