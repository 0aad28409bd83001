// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_TruthTable(t *testing.T) {
	tests := []struct {
		name          string
		requested     Name
		authenticated bool
		wantAllow     bool
		wantTarget    Name
	}{
		{"private route, authenticated", Profile, true, true, Profile},
		{"private route, unauthenticated", Profile, false, false, SignIn},
		{"public route, authenticated", SignUp, true, false, Dashboard},
		{"public route, unauthenticated", SignUp, false, true, SignUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Resolve(Loc(tt.requested), tt.authenticated)
			assert.Equal(t, tt.wantAllow, d.Allow)
			assert.Equal(t, tt.wantTarget, d.Target.Route)
		})
	}
}

func TestResolve_RedirectCarriesOrigin(t *testing.T) {
	requested := Parse("/dashboard")
	d := Resolve(requested, false)

	assert.False(t, d.Allow)
	assert.Equal(t, SignIn, d.Target.Route)
	assert.Equal(t, Dashboard, d.From.Route)
}

func TestParse_ResetTokenQuery(t *testing.T) {
	loc := Parse("/reset-password?token=fd3d82a2-5aa0-479d-a46d-59c911a8f0f8")

	assert.Equal(t, ResetPassword, loc.Route)
	assert.Equal(t, "fd3d82a2-5aa0-479d-a46d-59c911a8f0f8", loc.Query.Get("token"))
}

func TestParse_UnknownPathFallsBackToSignIn(t *testing.T) {
	assert.Equal(t, SignIn, Parse("/nope").Route)
	assert.Equal(t, SignIn, Parse("://bad").Route)
}
