package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sheetboard/internal/board"
)

// renderCard renders one summary card in its palette color. Title and
// description are shown verbatim and truncated to one line each.
func renderCard(card board.Card, selected bool, width int) string {
	inner := width - borderPadding*2
	if inner < 1 {
		inner = 1
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle.BorderForeground(lipgloss.Color(card.Color.Hex))
	}
	style = style.
		Width(inner+borderPadding).
		Background(lipgloss.Color(card.Color.Hex)).
		Foreground(lipgloss.Color(card.Color.TextTone()))

	title := lipgloss.NewStyle().Bold(true).Render(truncate(card.Title(), inner))
	desc := truncate(card.Description(), inner)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, desc))
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	const ellipsis = "…"
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
