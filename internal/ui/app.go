// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the Bubble Tea application: the five form pages,
// the dashboard shell, and the navigation loop in front of them.
//
// Global state is explicit, not ambient: the session container, toast
// queue, locale manager, and API client are constructed in main and handed
// to New. Pages receive them through the App and never look anything up.
package ui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberdesk/barberdesk-tui/internal/api"
	"github.com/barberdesk/barberdesk-tui/internal/locale"
	"github.com/barberdesk/barberdesk-tui/internal/route"
	"github.com/barberdesk/barberdesk-tui/internal/session"
	"github.com/barberdesk/barberdesk-tui/internal/toast"
	"github.com/barberdesk/barberdesk-tui/internal/ui/components"
	"github.com/barberdesk/barberdesk-tui/internal/ui/styles"
)

// Service is the slice of the API client the pages call directly. Sign-in
// goes through the session container instead, so it is not part of this
// interface.
type Service interface {
	CreateUser(ctx context.Context, name, email, password string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, password, confirmation, token string) error
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (api.User, error)
	UpdateAvatar(ctx context.Context, filename string, content io.Reader) (api.User, error)
}

// page is one navigable view.
type page interface {
	Update(app *App, msg tea.Msg) (page, tea.Cmd)
	View(app *App) string
}

// App is the root Bubble Tea model.
type App struct {
	session *session.Container
	service Service
	toasts  *toast.Queue
	locale  *locale.Manager
	theme   *styles.Theme
	header  *components.Header
	timeout time.Duration

	location route.Location
	current  page

	width  int
	height int

	ticking  bool
	quitting bool
}

// New constructs the App starting at the given location. The route guard
// runs immediately, so a deep link to a private page lands on sign-in when
// no session was restored.
func New(sess *session.Container, svc Service, toasts *toast.Queue, loc *locale.Manager, start route.Location, timeout time.Duration) *App {
	app := &App{
		session: sess,
		service: svc,
		toasts:  toasts,
		locale:  loc,
		theme:   styles.NewTheme(),
		header:  components.NewHeader("GoBarber"),
		timeout: timeout,
	}
	app.navigate(start)
	return app
}

// Location returns the current location. Exposed for tests.
func (a *App) Location() route.Location { return a.location }

// navigate runs the guard and swaps in the target page.
func (a *App) navigate(requested route.Location) {
	decision := route.Resolve(requested, a.session.IsAuthenticated())
	a.location = decision.Target
	// decision.From is carried but unconsumed: the return-to-intended-page
	// trip is not implemented anywhere.
	a.current = a.newPage(decision.Target)
}

// newPage constructs the view for a location from scratch, so stale field
// values never leak across visits.
func (a *App) newPage(loc route.Location) page {
	switch loc.Route {
	case route.SignUp:
		return newSignUpPage(a.locale)
	case route.ForgotPassword:
		return newForgotPage(a.locale)
	case route.ResetPassword:
		return newResetPage(a.locale, loc.Query.Get("token"))
	case route.Dashboard:
		return newDashboardPage()
	case route.Profile:
		return newProfilePage(a.locale, a.session)
	default:
		return newSignInPage(a.locale)
	}
}

// ctx returns the context for one remote call.
func (a *App) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.header.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			a.quitting = true
			return a, tea.Quit
		}

	case navigateMsg:
		a.navigate(msg.loc)
		return a, nil

	case toastMsg:
		a.toasts.Add(msg.kind, msg.title, msg.description)
		return a, a.ensureTick()

	case toast.TickMsg:
		a.ticking = false
		if a.toasts.Len() > 0 {
			return a, a.ensureTick()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.Update(a, msg)
	return a, cmd
}

// ensureTick keeps exactly one redraw tick running while toasts are
// visible, so expired entries leave the screen without user input.
func (a *App) ensureTick() tea.Cmd {
	if a.ticking {
		return nil
	}
	a.ticking = true
	return toast.TickCmd()
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	a.header.Locale = a.locale.Tag().String()
	a.header.User = ""
	if user, ok := a.session.User(); ok {
		a.header.User = user.Name
	}
	body := lipgloss.JoinVertical(lipgloss.Left, a.header.View(), a.current.View(a))

	stack := components.RenderToastStack(a.toasts.Toasts(), a.width)
	if stack == "" {
		return body
	}
	if a.width > 0 {
		overlay := lipgloss.PlaceHorizontal(a.width, lipgloss.Right, stack)
		return lipgloss.JoinVertical(lipgloss.Left, overlay, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, stack, body)
}
