// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the barberdesk TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// Orange - Brand color, buttons, highlights (the GoBarber accent).
var Orange = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FF9000"}

// Cyan - Informational toasts, links
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success toasts
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, field validation messages
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#312E38"}

// SurfaceDim - Panels, toast backgrounds
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#28262E"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#3E3B47"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F4EDE8"}

// TextSecondary - Labels, placeholders
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#999591"}

// TextMuted - Hints, key-binding help lines
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#666360"}

// StatusIndicators are glyphs used by toasts and field errors.
var StatusIndicators = struct {
	Info    string
	Success string
	Error   string
}{
	Info:    "●",
	Success: "✓",
	Error:   "✗",
}
