package markup

import (
	"github.com/charmbracelet/lipgloss"
)

// HTML wraps spans in presentation tags. The span text is inserted as-is:
// the data source is trusted and may carry its own markup.
type HTML struct{}

// Bold implements Style.
func (HTML) Bold(text string) string { return "<strong>" + text + "</strong>" }

// Italic implements Style.
func (HTML) Italic(text string) string { return "<em>" + text + "</em>" }

// Underline implements Style.
func (HTML) Underline(text string) string { return "<u>" + text + "</u>" }

// Code implements Style.
func (HTML) Code(text string) string { return "<code>" + text + "</code>" }

// Plain drops the delimiters and keeps the span text.
type Plain struct{}

// Bold implements Style.
func (Plain) Bold(text string) string { return text }

// Italic implements Style.
func (Plain) Italic(text string) string { return text }

// Underline implements Style.
func (Plain) Underline(text string) string { return text }

// Code implements Style.
func (Plain) Code(text string) string { return text }

// Terminal renders spans with lipgloss text attributes.
type Terminal struct {
	BoldStyle      lipgloss.Style
	ItalicStyle    lipgloss.Style
	UnderlineStyle lipgloss.Style
	CodeStyle      lipgloss.Style
}

// NewTerminal returns the default terminal style.
func NewTerminal() Terminal {
	return Terminal{
		BoldStyle:      lipgloss.NewStyle().Bold(true),
		ItalicStyle:    lipgloss.NewStyle().Italic(true),
		UnderlineStyle: lipgloss.NewStyle().Underline(true),
		CodeStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#c7254e", Dark: "#ff7b72"}).
			Background(lipgloss.AdaptiveColor{Light: "#f3f3f3", Dark: "#2d333b"}),
	}
}

// Bold implements Style.
func (t Terminal) Bold(text string) string { return t.BoldStyle.Render(text) }

// Italic implements Style.
func (t Terminal) Italic(text string) string { return t.ItalicStyle.Render(text) }

// Underline implements Style.
func (t Terminal) Underline(text string) string { return t.UnderlineStyle.Render(text) }

// Code implements Style.
func (t Terminal) Code(text string) string { return t.CodeStyle.Render(text) }
