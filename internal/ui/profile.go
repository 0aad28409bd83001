// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberdesk/barberdesk-tui/internal/api"
	"github.com/barberdesk/barberdesk-tui/internal/locale"
	"github.com/barberdesk/barberdesk-tui/internal/route"
	"github.com/barberdesk/barberdesk-tui/internal/session"
	"github.com/barberdesk/barberdesk-tui/internal/toast"
	"github.com/barberdesk/barberdesk-tui/internal/ui/components"
	"github.com/barberdesk/barberdesk-tui/internal/validate"
)

// profilePage edits the signed-in account. Name and e-mail are always
// required; the three password fields only matter once the current password
// is filled in. The avatar field takes a local file path and uploads with
// ctrl+a, independently of the main form.
type profilePage struct {
	fields components.FieldSet
	spin   components.Spinner
	busy   bool
}

func newProfilePage(loc *locale.Manager, sess *session.Container) *profilePage {
	name := components.NewField("name", loc.T("profile.name"), false)
	email := components.NewField("email", loc.T("profile.email"), false)
	if user, ok := sess.User(); ok {
		name.Input.SetValue(user.Name)
		email.Input.SetValue(user.Email)
	}
	return &profilePage{
		fields: components.NewFieldSet(
			name,
			email,
			components.NewField("old_password", loc.T("profile.old_password"), true),
			components.NewField("password", loc.T("profile.new_password"), true),
			components.NewField("password_confirmation", loc.T("profile.confirmation"), true),
			components.NewField("avatar", loc.T("profile.avatar"), false),
		),
		spin: components.NewSpinner(loc.T("common.busy")),
	}
}

func (p *profilePage) schema(loc *locale.Manager) validate.Schema {
	return validate.Schema{
		validate.Required("name", loc.T("validate.name")),
		validate.Required("email", loc.T("validate.email")),
		validate.Email("email", loc.T("validate.email_fmt")),
		validate.RequiredWith("password", "old_password", loc.T("validate.required")),
		validate.RequiredWith("password_confirmation", "old_password", loc.T("validate.required")),
		validate.EqualsField("password_confirmation", "password", loc.T("validate.confirmation")),
	}
}

func (p *profilePage) Update(app *App, msg tea.Msg) (page, tea.Cmd) {
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
		case "ctrl+a":
			return p.uploadAvatar(app)
		case "esc":
			return p, navigateTo(route.Loc(route.Dashboard))
		}
	}

	switch result := msg.(type) {
	case profileResultMsg:
		p.busy = false
		if result.err != nil {
			return p, showToast(toast.KindError,
				app.locale.T("profile.error.title"),
				app.locale.T("profile.error.desc"))
		}
		app.session.UpdateUser(result.user)
		return p, tea.Batch(
			navigateTo(route.Loc(route.Dashboard)),
			showToast(toast.KindSuccess,
				app.locale.T("profile.success.title"),
				app.locale.T("profile.success.desc")),
		)

	case avatarResultMsg:
		p.busy = false
		if result.err != nil {
			return p, showToast(toast.KindError, app.locale.T("avatar.error.title"), "")
		}
		app.session.UpdateUser(result.user)
		return p, showToast(toast.KindSuccess, app.locale.T("avatar.success.title"), "")
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

func (p *profilePage) submit(app *App) (page, tea.Cmd) {
	p.fields.ClearErrors()

	values := p.fields.Values()
	if errs := p.schema(app.locale).Validate(values); !errs.Valid() {
		p.fields.SetErrors(errs)
		return p, nil
	}

	update := api.ProfileUpdate{
		Name:  values["name"],
		Email: values["email"],
	}
	// Password fields only travel when a change was actually requested, so
	// the server never sees empty password strings.
	if values["old_password"] != "" {
		update.OldPassword = values["old_password"]
		update.Password = values["password"]
		update.PasswordConfirmation = values["password_confirmation"]
	}

	p.busy = true
	return p, tea.Batch(func() tea.Msg {
		ctx, cancel := app.ctx()
		defer cancel()
		user, err := app.service.UpdateProfile(ctx, update)
		return profileResultMsg{user: user, err: err}
	}, p.spin.Tick())
}

func (p *profilePage) uploadAvatar(app *App) (page, tea.Cmd) {
	path := p.fields.Value("avatar")
	if path == "" {
		return p, showToast(toast.KindError, app.locale.T("avatar.error.title"), "")
	}

	p.busy = true
	return p, tea.Batch(func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return avatarResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := app.ctx()
		defer cancel()
		user, err := app.service.UpdateAvatar(ctx, filepath.Base(path), f)
		return avatarResultMsg{user: user, err: err}
	}, p.spin.Tick())
}

func (p *profilePage) View(app *App) string {
	t := app.theme
	loc := app.locale

	form := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(loc.T("profile.title")),
		p.fields.View(),
		"",
		t.Hint.Render("enter: "+loc.T("profile.submit")+"  ctrl+a: avatar  esc: ←"),
	)
	if p.busy {
		form = lipgloss.JoinVertical(lipgloss.Left, form, p.spin.View())
	}
	return t.Panel.Render(form)
}
