package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/logging"
)

// CardsLoadedMsg carries the cards of a successful load.
type CardsLoadedMsg struct {
	Cards []board.Card
}

// LoadFailedMsg carries the fallback message of a failed load.
type LoadFailedMsg struct {
	Message string
	Err     error
}

// OpenedMsg reports the outcome of an open action.
type OpenedMsg struct {
	URL string
	Err error
}

// Opener opens url in a new browsing context.
type Opener func(url string) error

// loadCmd runs one load cycle off the event loop. The loader reports to a
// Snapshot, which is turned into a message for Update.
func loadCmd(ctx context.Context, loader *board.Loader) tea.Cmd {
	return func() tea.Msg {
		var snap board.Snapshot
		_, err := loader.Load(ctx, &snap)
		if snap.Failed() {
			return LoadFailedMsg{Message: snap.Failure, Err: err}
		}
		return CardsLoadedMsg{Cards: snap.Cards}
	}
}

// openCmd opens url with opener.
func openCmd(ctx context.Context, opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		err := opener(url)
		log := logging.FromContext(ctx)
		if err != nil {
			log.Warn().Str("component", "tui").Str("url", url).Err(err).Msg("open action failed")
		} else {
			log.Debug().Str("component", "tui").Str("url", url).Msg("opened project file")
		}
		return OpenedMsg{URL: url, Err: err}
	}
}
