package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 30
	borderPadding = 2
	minHeight     = 5

	// sidebarWidth is the width of the card column, borders included.
	sidebarWidth = 36
	// cardHeight is the rows a card occupies: border, title, description, border.
	cardHeight = 4
	// sidebarHeaderHeight is the rows used by the date and count lines.
	sidebarHeaderHeight = 3
	// statusHeight is the rows used by the help and status lines.
	statusHeight = 2
)

// Shared styles.
//
//nolint:gochecknoglobals // Style values are immutable and shared across views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#f9fafb"})
	LabelStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"})
	ValueStyle  = lipgloss.NewStyle()
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#6b7280"})
	CriticalStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ef4444"))
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"})
	DateStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#111827", Dark: "#e5e7eb"})
	ButtonStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#374151"))
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"})
	DetailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Padding(0, 1)
	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				Padding(0, 1)
)
