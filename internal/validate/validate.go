// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package validate checks form input against an explicit, ordered rule
// table. Rules are evaluated in declaration order and every violation is
// collected, so a form can show all of its field errors at once.
//
// Cross-field rules (password confirmation, "required if sibling is
// non-empty") are plain table entries; nothing depends on a validation
// library's implicit evaluation order.
package validate

import (
	"net/mail"
	"unicode/utf8"
)

// Values holds raw field values keyed by field name.
type Values map[string]string

// Errors maps a field name to the messages of its violated rules, in rule
// declaration order. An empty map means the input is valid.
type Errors map[string][]string

// Valid reports whether no rule was violated.
func (e Errors) Valid() bool { return len(e) == 0 }

// First returns the first message recorded for field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Rule checks one constraint on one field. ok is false when the rule is
// violated.
type Rule struct {
	Field   string
	Message string
	Check   func(v Values) (ok bool)
}

// Schema is an ordered rule table.
type Schema []Rule

// Validate evaluates every rule against v and collects the violations.
func (s Schema) Validate(v Values) Errors {
	errs := Errors{}
	for _, rule := range s {
		if !rule.Check(v) {
			errs[rule.Field] = append(errs[rule.Field], rule.Message)
		}
	}
	return errs
}

// Required fails when the field is empty.
func Required(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v Values) bool {
		return v[field] != ""
	}}
}

// Email fails when the field is non-empty but not a well-formed address.
// Emptiness is Required's concern, so the two compose without double
// reporting.
func Email(field, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v Values) bool {
		value := v[field]
		if value == "" {
			return true
		}
		addr, err := mail.ParseAddress(value)
		return err == nil && addr.Address == value
	}}
}

// MinLen fails when the field is shorter than n characters.
func MinLen(field string, n int, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v Values) bool {
		return utf8.RuneCountInString(v[field]) >= n
	}}
}

// EqualsField fails when the field differs from other. Used for password
// confirmation.
func EqualsField(field, other, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v Values) bool {
		return v[field] == v[other]
	}}
}

// RequiredWith fails when sibling is non-empty but the field is empty: the
// conditional requirement behind "filling the current password makes the new
// password mandatory".
func RequiredWith(field, sibling, message string) Rule {
	return Rule{Field: field, Message: message, Check: func(v Values) bool {
		if v[sibling] == "" {
			return true
		}
		return v[field] != ""
	}}
}
