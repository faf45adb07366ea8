package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/sheetboard/internal/sheet"
)

// Placeholder texts used when a record lacks a field.
const (
	NoDetailsText   = "No additional details available."
	NoDeadlineText  = "Not set"
	NoTaskText      = "n/a"
	OpenActionLabel = "Open File"
	DeadlineLabel   = "Deadline:"
	TaskLabel       = "Type of project:"
)

// detailSeparator splits the details field into lines.
const detailSeparator = ";"

// ErrNoSuchProject is returned when a selection does not name a loaded card.
var ErrNoSuchProject = errors.New("no such project")

// openTargetFields lists the fields searched for the open action, in priority order.
//
//nolint:gochecknoglobals // Fixed lookup order.
var openTargetFields = []string{sheet.FieldFile, sheet.FieldLink, sheet.FieldProjectFile}

// Detail is the expanded view of a selected card. Lines hold the raw detail
// lines; surfaces format them with their own markup style.
type Detail struct {
	Title       string
	OpenURL     string
	HasOpen     bool
	Description string
	Deadline    string
	Task        string
	Lines       []string
	Color       Color
}

// BuildDetail builds the detail view for card, keeping the card's color.
func BuildDetail(card Card) Detail {
	r := card.Record
	url, ok := OpenTarget(r)

	deadline := r.Value(sheet.FieldDeadline)
	if deadline == "" {
		deadline = NoDeadlineText
	}
	task := r.Value(sheet.FieldTask)
	if task == "" {
		task = NoTaskText
	}

	return Detail{
		Title:       r.Title(),
		OpenURL:     url,
		HasOpen:     ok,
		Description: r.Description(),
		Deadline:    deadline,
		Task:        task,
		Lines:       DetailLines(r),
		Color:       card.Color,
	}
}

// OpenTarget returns the first non-empty of file, link and project file.
// ok is false when none is set, in which case no open action is offered.
func OpenTarget(r sheet.Record) (url string, ok bool) {
	for _, name := range openTargetFields {
		if r.Has(name) {
			return r.Value(name), true
		}
	}
	return "", false
}

// DetailLines splits the details field on semicolons, trimming each segment
// and dropping empty ones. An absent or empty field yields the placeholder line.
func DetailLines(r sheet.Record) []string {
	raw := r.Value(sheet.FieldDetails)
	if raw == "" {
		raw = NoDetailsText
	}

	var lines []string
	for _, segment := range strings.Split(raw, detailSeparator) {
		if s := strings.TrimSpace(segment); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// Select returns the card at index, or ErrNoSuchProject.
func Select(cards []Card, index int) (Card, error) {
	if index < 0 || index >= len(cards) {
		return Card{}, fmt.Errorf("%w: %d (have %d)", ErrNoSuchProject, index, len(cards))
	}
	return cards[index], nil
}
