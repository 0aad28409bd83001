// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barberdesk/barberdesk-tui/internal/ui/styles"
)

// Field is one labeled form input with an inline validation message. It
// wraps a bubbles textinput so pages deal in named fields, not raw inputs.
type Field struct {
	Name  string
	Input textinput.Model
	Error string
}

// NewField creates a field. Password fields mask their input.
func NewField(name, placeholder string, password bool) Field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "│ "
	in.CharLimit = 256
	if password {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
	}
	return Field{Name: name, Input: in}
}

// Update forwards a message to the underlying input.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return f, cmd
}

// Value returns the current input value.
func (f Field) Value() string { return f.Input.Value() }

// View renders the input plus its error line, if any.
func (f Field) View() string {
	out := f.Input.View()
	if f.Error != "" {
		errStyle := lipgloss.NewStyle().Foreground(styles.Rose)
		out += "\n" + errStyle.Render("  "+styles.StatusIndicators.Error+" "+f.Error)
	}
	return out
}

// FieldSet is the ordered collection of a page's fields with one focused.
type FieldSet struct {
	Fields []Field
	Focus  int
}

// NewFieldSet builds a set and focuses the first field.
func NewFieldSet(fields ...Field) FieldSet {
	fs := FieldSet{Fields: fields}
	if len(fs.Fields) > 0 {
		fs.Fields[0].Input.Focus()
	}
	return fs
}

// Next moves focus to the following field, wrapping around.
func (fs *FieldSet) Next() {
	fs.move(1)
}

// Prev moves focus to the preceding field, wrapping around.
func (fs *FieldSet) Prev() {
	fs.move(-1)
}

func (fs *FieldSet) move(delta int) {
	if len(fs.Fields) == 0 {
		return
	}
	fs.Fields[fs.Focus].Input.Blur()
	fs.Focus = (fs.Focus + delta + len(fs.Fields)) % len(fs.Fields)
	fs.Fields[fs.Focus].Input.Focus()
}

// Update forwards a message to the focused field only.
func (fs FieldSet) Update(msg tea.Msg) (FieldSet, tea.Cmd) {
	if len(fs.Fields) == 0 {
		return fs, nil
	}
	var cmd tea.Cmd
	fs.Fields[fs.Focus], cmd = fs.Fields[fs.Focus].Update(msg)
	return fs, cmd
}

// Values collects every field's value keyed by field name.
func (fs FieldSet) Values() map[string]string {
	out := make(map[string]string, len(fs.Fields))
	for _, f := range fs.Fields {
		out[f.Name] = f.Value()
	}
	return out
}

// SetErrors attaches per-field messages (the first message per field) and
// clears fields that are no longer in error.
func (fs *FieldSet) SetErrors(errs map[string][]string) {
	for i := range fs.Fields {
		fs.Fields[i].Error = ""
		if msgs := errs[fs.Fields[i].Name]; len(msgs) > 0 {
			fs.Fields[i].Error = msgs[0]
		}
	}
}

// ClearErrors removes every field's error message.
func (fs *FieldSet) ClearErrors() {
	for i := range fs.Fields {
		fs.Fields[i].Error = ""
	}
}

// View renders the fields top to bottom.
func (fs FieldSet) View() string {
	parts := make([]string, 0, len(fs.Fields))
	for _, f := range fs.Fields {
		parts = append(parts, f.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetValue replaces the named field's value, reporting whether the field
// exists.
func (fs *FieldSet) SetValue(name, value string) bool {
	for i := range fs.Fields {
		if fs.Fields[i].Name == name {
			fs.Fields[i].Input.SetValue(value)
			return true
		}
	}
	return false
}

// Value returns the named field's value, or "".
func (fs FieldSet) Value(name string) string {
	for _, f := range fs.Fields {
		if f.Name == name {
			return f.Value()
		}
	}
	return ""
}
