// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package route declares the navigable views, their access policies, and the
// guard that decides render-or-redirect on every navigation.
package route

import "net/url"

// Name identifies a navigable view.
type Name string

// The route table.
const (
	SignIn         Name = "/"
	SignUp         Name = "/signup"
	ForgotPassword Name = "/forgot-password"
	ResetPassword  Name = "/reset-password"
	Dashboard      Name = "/dashboard"
	Profile        Name = "/profile"
)

// Policy tags a route as reachable with or without an active session.
type Policy int

const (
	// Public routes are for unauthenticated users only.
	Public Policy = iota
	// Private routes require an active session.
	Private
)

// policies maps every route to its access policy. Routes absent from the
// table do not exist.
var policies = map[Name]Policy{
	SignIn:         Public,
	SignUp:         Public,
	ForgotPassword: Public,
	ResetPassword:  Public,
	Dashboard:      Private,
	Profile:        Private,
}

// Location is a navigation target: a route plus its raw query (the
// reset-password entry point carries ?token=<opaque>).
type Location struct {
	Route Name
	Query url.Values
}

// Loc builds a Location without a query.
func Loc(name Name) Location {
	return Location{Route: name}
}

// Parse interprets a "/path?k=v" string as a Location. Unknown paths map to
// the sign-in route.
func Parse(raw string) Location {
	u, err := url.Parse(raw)
	if err != nil {
		return Loc(SignIn)
	}
	name := Name(u.Path)
	if _, ok := policies[name]; !ok {
		name = SignIn
	}
	return Location{Route: name, Query: u.Query()}
}

// Decision is the guard's verdict for one navigation.
type Decision struct {
	// Allow reports whether the requested view renders.
	Allow bool
	// Target is where to go: the requested location when allowed, the
	// redirect destination otherwise.
	Target Location
	// From carries the originally requested location on a redirect, so a
	// downstream sign-in flow could return the user to it. Nothing consumes
	// it today.
	From Location
}

// Resolve decides whether the requested location renders or redirects,
// given session presence:
//
//	private + authenticated   → render
//	private + unauthenticated → redirect to sign-in
//	public  + authenticated   → redirect to dashboard
//	public  + unauthenticated → render
//
// It is a pure function; it holds no state and performs no transitions
// beyond the immediate verdict.
func Resolve(requested Location, authenticated bool) Decision {
	private := policies[requested.Route] == Private

	if private == authenticated {
		return Decision{Allow: true, Target: requested}
	}

	redirect := Loc(SignIn)
	if authenticated {
		redirect = Loc(Dashboard)
	}
	return Decision{Target: redirect, From: requested}
}
