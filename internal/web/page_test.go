package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/sheet"
)

func cardsFrom(t *testing.T, payload string) []board.Card {
	t.Helper()
	return board.BuildCards(sheet.Parse(payload))
}

const pagePayload = "Title\tDescription\tFile\tLink\tDetails\n" +
	"Website\t<b>Redesign</b>\t\thttp://x\tStep **1**; Step 2 ;;\n" +
	"Budget\tNumbers\t\t\t\n" +
	"Launch\tGo live\t\t\t\n"

func render(t *testing.T, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, page))
	return buf.String()
}

func TestNewPage_Cards(t *testing.T) {
	snap := board.Snapshot{Cards: cardsFrom(t, pagePayload)}
	page := NewPage(snap, NoSelection, "January 5, 2025")

	require.Len(t, page.Cards, 3)
	assert.Equal(t, "blue", page.Cards[0].Color)
	assert.Equal(t, "yellow", page.Cards[2].Color)
	assert.True(t, page.Cards[2].DarkText)
	assert.Nil(t, page.Detail)
	assert.Equal(t, "3 projects", page.Count)

	out := render(t, page)
	assert.Contains(t, out, `<div id="currentDate">January 5, 2025</div>`)
	assert.Contains(t, out, `class="project-card blue"`)
	assert.Contains(t, out, `class="project-card yellow" style="color:#333"`)
	assert.Contains(t, out, `<p><b>Redesign</b></p>`, "sheet content is trusted HTML")
	assert.Contains(t, out, `href="?project=2"`)
	assert.Contains(t, out, placeholderText)
	assert.Contains(t, out, ".project-card.indigo")
}

func TestNewPage_Detail(t *testing.T) {
	snap := board.Snapshot{Cards: cardsFrom(t, pagePayload)}
	page := NewPage(snap, 0, "today")

	require.NotNil(t, page.Detail)
	assert.True(t, page.Cards[0].Selected)
	assert.False(t, page.Cards[1].Selected)

	out := render(t, page)
	assert.Contains(t, out, `<div class="details-header blue">`)
	assert.Contains(t, out, `data-href="http://x"`)
	assert.Contains(t, out, ">Open File</button>")
	assert.Contains(t, out, "<p>Step <strong>1</strong></p>")
	assert.Contains(t, out, "<p>Step 2</p>")
	assert.Contains(t, out, "<strong>Deadline:</strong> Not set")
	assert.Contains(t, out, "<strong>Type of project:</strong> n/a")
	assert.NotContains(t, out, placeholderText)

	// Fixed order of the detail region.
	order := []string{"<h2>Website</h2>", "Open File", "<b>Redesign</b>", "details-separator", "Deadline:", "Type of project:", "Step <strong>1</strong>"}
	detail := out[strings.Index(out, `id="projectDetails"`):]
	last := -1
	for _, s := range order {
		idx := strings.Index(detail, s)
		require.GreaterOrEqual(t, idx, 0, "missing %q", s)
		assert.Greater(t, idx, last, "%q out of order", s)
		last = idx
	}
}

func TestNewPage_DetailWithoutOpenAction(t *testing.T) {
	snap := board.Snapshot{Cards: cardsFrom(t, pagePayload)}
	out := render(t, NewPage(snap, 1, "today"))

	assert.Contains(t, out, "<h2>Budget</h2>")
	assert.NotContains(t, out, "Open File")
	assert.Contains(t, out, "<p>"+board.NoDetailsText+"</p>")
}

func TestNewPage_Failure(t *testing.T) {
	snap := board.Snapshot{}
	snap.ShowLoadFailure(board.FallbackMessage)
	page := NewPage(snap, 0, "today")

	assert.Empty(t, page.Cards)
	assert.Nil(t, page.Detail)

	out := render(t, page)
	assert.Contains(t, out, "<p>"+board.FallbackMessage+"</p>")
	assert.NotContains(t, out, `class="project-card `)
	assert.NotContains(t, out, `class="count"`)
}

func TestNewPage_OutOfRangeSelection(t *testing.T) {
	snap := board.Snapshot{Cards: cardsFrom(t, pagePayload)}
	page := NewPage(snap, 10, "today")
	assert.Nil(t, page.Detail)
}
