package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/markup"
)

// noSelectionText fills the detail pane before any card is chosen.
const noSelectionText = "Select a project to see its details."

// RenderDetail renders the detail content in fixed order: title, open
// action, description, separator, deadline, task, then one paragraph per
// detail line passed through f. width is the content width.
func RenderDetail(d board.Detail, f markup.Formatter, width int) string {
	if width < 1 {
		width = 1
	}
	wrap := lipgloss.NewStyle().Width(width)
	accent := lipgloss.Color(d.Color.Hex)

	var content strings.Builder

	header := HeaderStyle.Foreground(accent).Render(d.Title)
	if d.HasOpen {
		header = lipgloss.JoinHorizontal(lipgloss.Center,
			header, "  ", ButtonStyle.Background(accent).
				Foreground(lipgloss.Color(d.Color.TextTone())).
				Render(board.OpenActionLabel))
	}
	content.WriteString(header)
	content.WriteString("\n")
	if d.HasOpen {
		content.WriteString(SubtleStyle.Render(d.OpenURL))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(wrap.Render(d.Description))
	content.WriteString("\n")
	content.WriteString(SeparatorStyle.Render(strings.Repeat("─", width)))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render(board.DeadlineLabel))
	content.WriteString(" ")
	content.WriteString(ValueStyle.Render(d.Deadline))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render(board.TaskLabel))
	content.WriteString(" ")
	content.WriteString(ValueStyle.Render(d.Task))
	content.WriteString("\n")

	for _, line := range f.FormatAll(d.Lines) {
		content.WriteString("\n")
		content.WriteString(wrap.Render(line))
		content.WriteString("\n")
	}

	return strings.TrimRight(content.String(), "\n")
}
