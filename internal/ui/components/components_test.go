// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberdesk/barberdesk-tui/internal/toast"
)

func TestFieldSetFocusWrapsBothWays(t *testing.T) {
	fs := NewFieldSet(
		NewField("a", "A", false),
		NewField("b", "B", false),
		NewField("c", "C", true),
	)
	require.Equal(t, 0, fs.Focus)

	fs.Next()
	fs.Next()
	assert.Equal(t, 2, fs.Focus)
	fs.Next()
	assert.Equal(t, 0, fs.Focus)

	fs.Prev()
	assert.Equal(t, 2, fs.Focus)
	assert.True(t, fs.Fields[2].Input.Focused())
	assert.False(t, fs.Fields[0].Input.Focused())
}

func TestFieldSetUpdateReachesFocusedFieldOnly(t *testing.T) {
	fs := NewFieldSet(
		NewField("email", "E-mail", false),
		NewField("password", "Password", true),
	)

	fs, _ = fs.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	assert.Equal(t, "hi", fs.Value("email"))
	assert.Empty(t, fs.Value("password"))
}

func TestFieldSetSetValue(t *testing.T) {
	fs := NewFieldSet(NewField("email", "E-mail", false))

	assert.True(t, fs.SetValue("email", "x@y.com"))
	assert.Equal(t, "x@y.com", fs.Value("email"))
	assert.False(t, fs.SetValue("missing", "v"))
	assert.Empty(t, fs.Value("missing"))
}

func TestFieldSetErrorsAttachAndClear(t *testing.T) {
	fs := NewFieldSet(
		NewField("email", "E-mail", false),
		NewField("password", "Password", true),
	)

	fs.SetErrors(map[string][]string{"email": {"first", "second"}})
	assert.Equal(t, "first", fs.Fields[0].Error)
	assert.Empty(t, fs.Fields[1].Error)
	assert.Contains(t, fs.View(), "first")

	fs.ClearErrors()
	assert.Empty(t, fs.Fields[0].Error)
}

func TestPasswordFieldMasksInput(t *testing.T) {
	f := NewField("password", "Password", true)
	f.Input.Focus()
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})

	assert.Equal(t, "abc", f.Value())
	assert.NotContains(t, f.View(), "abc")
}

func TestRenderToastStackOrderAndEmpty(t *testing.T) {
	assert.Empty(t, RenderToastStack(nil, 80))

	out := RenderToastStack([]toast.Toast{
		{Kind: toast.KindError, Title: "first failure"},
		{Kind: toast.KindSuccess, Title: "then success"},
	}, 80)

	require.Contains(t, out, "first failure")
	require.Contains(t, out, "then success")
	assert.Less(t, strings.Index(out, "first failure"), strings.Index(out, "then success"))
}

func TestRenderToastTruncatesLongTitle(t *testing.T) {
	long := strings.Repeat("x", 200)
	out := RenderToast(toast.Toast{Kind: toast.KindInfo, Title: long}, 80)

	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestHeaderShowsUserAndLocale(t *testing.T) {
	h := NewHeader("GoBarber")
	h.SetWidth(80)
	h.User = "Ana"
	h.Locale = "pt-BR"

	out := h.View()
	assert.Contains(t, out, "GoBarber")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "pt-BR")
}

func TestHeaderTruncatesLongUserName(t *testing.T) {
	h := NewHeader("GoBarber")
	h.SetWidth(40)
	h.User = strings.Repeat("n", 100)

	out := h.View()
	assert.Contains(t, out, "GoBarber")
	assert.NotContains(t, out, strings.Repeat("n", 100))
}

func TestSpinnerViewCarriesLabel(t *testing.T) {
	s := NewSpinner("Sending...")
	assert.Contains(t, s.View(), "Sending...")
}
