package board

import (
	"github.com/rshade/sheetboard/internal/sheet"
)

// Card is the summary view of one record.
type Card struct {
	// Index is the record's position in the loaded list.
	Index  int
	Record sheet.Record
	Color  Color
}

// Title returns the card title, shown verbatim.
func (c Card) Title() string { return c.Record.Title() }

// Description returns the card description, shown verbatim.
func (c Card) Description() string { return c.Record.Description() }

// DarkText reports whether the card needs the dark text tone.
func (c Card) DarkText() bool { return c.Color.Light() }

// BuildCards maps records to cards in order, assigning palette colors by position.
func BuildCards(records []sheet.Record) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = Card{Index: i, Record: r, Color: ColorAt(i)}
	}
	return cards
}
