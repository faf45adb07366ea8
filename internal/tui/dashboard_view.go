package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sheetboard/internal/board"
)

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", m.renderDetailPane())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(), m.help.View(m.keys))
}

// renderSidebar renders the date, the project count and the list region.
func (m DashboardModel) renderSidebar() string {
	header := DateStyle.Render(m.date)
	count := ""
	if m.state == ViewStateList || m.state == ViewStateDetail {
		count = SubtleStyle.Render(board.CountLabel(m.list.ItemCount()))
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, count, "", m.renderListRegion()),
	)
}

// renderListRegion renders the cards, the loading indicator or the fallback message.
func (m DashboardModel) renderListRegion() string {
	switch m.state {
	case ViewStateLoading:
		return m.spinner.View() + " Loading projects..."
	case ViewStateError:
		return CriticalStyle.Width(sidebarWidth).Render(m.failure)
	case ViewStateList, ViewStateDetail, ViewStateQuitting:
		return m.list.View()
	default:
		return ""
	}
}

// renderDetailPane renders the detail region, bordered in the selected card's color.
func (m DashboardModel) renderDetailPane() string {
	style := DetailBoxStyle.
		Width(m.detailContentWidth() + borderPadding).
		Height(m.detailContentHeight())

	if m.detail == nil {
		return style.Render(SubtleStyle.Render(noSelectionText))
	}

	style = style.BorderForeground(lipgloss.Color(m.detail.Color.Hex))
	if m.state == ViewStateDetail {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(m.viewport.View())
}

// renderStatusBar shows the latest status message.
func (m DashboardModel) renderStatusBar() string {
	if m.status == "" {
		return ""
	}
	return InfoStyle.Render(m.status)
}
