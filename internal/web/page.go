// Package web renders the project dashboard as an HTML page, either served
// over HTTP or written once to a file.
//
// Sheet values are inserted as trusted HTML, the same way the published page
// always treated its first-party spreadsheet. Do not point the dashboard at a
// sheet that untrusted people can edit.
package web

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/markup"
)

// NoSelection marks a page without a selected project.
const NoSelection = -1

// placeholderText fills the detail region before a card is chosen.
const placeholderText = "Select a project to see its details."

//nolint:gochecknoglobals // Parsed once at init, read-only afterwards.
var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Page is the data behind one rendered dashboard page.
type Page struct {
	Date        string
	Count       string
	Failure     string
	Cards       []CardView
	Detail      *DetailView
	Placeholder string
	PaletteCSS  template.CSS
}

// CardView is a card as the template shows it.
type CardView struct {
	Index       int
	Color       string
	DarkText    bool
	Selected    bool
	Title       template.HTML
	Description template.HTML
}

// DetailView is a detail as the template shows it. Lines are already formatted.
type DetailView struct {
	Color         string
	Title         template.HTML
	HasOpen       bool
	OpenURL       template.URL
	OpenLabel     string
	Description   template.HTML
	DeadlineLabel string
	Deadline      template.HTML
	TaskLabel     string
	Task          template.HTML
	Lines         []template.HTML
}

// NewPage builds the page for a load outcome. selected is the index of the
// card whose detail is shown, or NoSelection.
func NewPage(snap board.Snapshot, selected int, date string) Page {
	page := Page{
		Date:        date,
		Failure:     snap.Failure,
		Placeholder: placeholderText,
		PaletteCSS:  paletteCSS(),
	}
	if snap.Failed() {
		return page
	}

	page.Count = board.CountLabel(len(snap.Cards))
	page.Cards = make([]CardView, len(snap.Cards))
	for i, c := range snap.Cards {
		page.Cards[i] = CardView{
			Index:       c.Index,
			Color:       c.Color.Name,
			DarkText:    c.DarkText(),
			Selected:    c.Index == selected,
			Title:       template.HTML(c.Title()),       //nolint:gosec // Trusted sheet content.
			Description: template.HTML(c.Description()), //nolint:gosec // Trusted sheet content.
		}
	}

	if card, err := board.Select(snap.Cards, selected); err == nil {
		d := NewDetailView(board.BuildDetail(card))
		page.Detail = &d
	}
	return page
}

// NewDetailView converts a detail, formatting each detail line as HTML.
//
//nolint:gosec // Sheet content is trusted and injected unescaped.
func NewDetailView(d board.Detail) DetailView {
	lines := make([]template.HTML, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = template.HTML(markup.ToHTML(l))
	}
	return DetailView{
		Color:         d.Color.Name,
		Title:         template.HTML(d.Title),
		HasOpen:       d.HasOpen,
		OpenURL:       template.URL(d.OpenURL),
		OpenLabel:     board.OpenActionLabel,
		Description:   template.HTML(d.Description),
		DeadlineLabel: board.DeadlineLabel,
		Deadline:      template.HTML(d.Deadline),
		TaskLabel:     board.TaskLabel,
		Task:          template.HTML(d.Task),
		Lines:         lines,
	}
}

// WritePage renders page to w.
func WritePage(w io.Writer, page Page) error {
	if err := pageTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// paletteCSS emits one background rule per palette color.
func paletteCSS() template.CSS {
	var b strings.Builder
	for _, c := range board.Palette {
		fmt.Fprintf(&b, ".project-card.%s,.details-header.%s button{background:%s}\n", c.Name, c.Name, c.Hex)
	}
	for _, c := range board.Palette {
		if c.Light() {
			fmt.Fprintf(&b, ".details-header.%s button{color:%s}\n", c.Name, board.DarkTextTone)
		}
	}
	return template.CSS(b.String()) //nolint:gosec // Built from the fixed palette.
}
