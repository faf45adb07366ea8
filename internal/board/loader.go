package board

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/sheetboard/internal/logging"
	"github.com/rshade/sheetboard/internal/sheet"
)

// FallbackMessage replaces the card list when a load fails.
const FallbackMessage = "Failed to load projects. Check your TSV link."

// Fetcher returns the raw TSV payload.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) (string, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) (string, error) { return f(ctx) }

// Surface receives the outcome of a load. Each call replaces whatever the
// surface showed before.
type Surface interface {
	ShowCards(cards []Card)
	ShowLoadFailure(message string)
}

// Loader runs one load cycle: fetch, parse, build cards.
type Loader struct {
	fetcher Fetcher
	source  string
}

// NewLoader returns a Loader reading from fetcher. source only labels log entries.
func NewLoader(fetcher Fetcher, source string) *Loader {
	return &Loader{fetcher: fetcher, source: source}
}

// Load fetches and parses the payload once and shows the cards on surface.
// On failure it logs, shows FallbackMessage and returns the error; no cards
// from the failed attempt reach the surface.
func (l *Loader) Load(ctx context.Context, surface Surface) ([]Card, error) {
	log := l.logger(ctx)

	cards, err := l.fetchCards(ctx, log)
	if err != nil {
		log.Error().Err(err).Msg("loading projects failed")
		surface.ShowLoadFailure(FallbackMessage)
		return nil, err
	}

	log.Info().Int("projects", len(cards)).Msg("projects loaded")
	surface.ShowCards(cards)
	return cards, nil
}

func (l *Loader) fetchCards(ctx context.Context, log zerolog.Logger) (cards []Card, err error) {
	// A panicking fetcher or parser is a failed load, not a crash.
	defer func() {
		if r := recover(); r != nil {
			cards = nil
			err = fmt.Errorf("loading projects: %v", r)
		}
	}()

	if l.fetcher == nil {
		return nil, fmt.Errorf("loading projects: no source configured")
	}

	payload, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	log.Debug().Strs("columns", sheet.Headers(payload)).Msg("sheet fetched")
	return BuildCards(sheet.Parse(payload)), nil
}

func (l *Loader) logger(ctx context.Context) zerolog.Logger {
	base := logging.FromContext(ctx).With().Str("component", "loader")
	if l.source != "" {
		base = base.Str("source", l.source)
	}
	return base.Logger()
}
