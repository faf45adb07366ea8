package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sheetboard/internal/sheet"
)

func record(pairs ...string) sheet.Record {
	fields := make([]sheet.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		fields = append(fields, sheet.Field{Name: pairs[i], Value: pairs[i+1]})
	}
	return sheet.NewRecord(fields...)
}

func TestColorAt(t *testing.T) {
	names := []string{"blue", "purple", "yellow", "red", "green", "pink", "teal", "orange", "indigo"}
	for i, name := range names {
		assert.Equal(t, name, ColorAt(i).Name)
	}
	assert.Equal(t, ColorAt(0), ColorAt(9), "tenth card repeats the first color")
	assert.Equal(t, ColorAt(4), ColorAt(22))
	assert.Equal(t, ColorAt(8), ColorAt(-1))
}

func TestColor_Light(t *testing.T) {
	for _, c := range Palette {
		want := c.Name == "yellow" || c.Name == "orange"
		assert.Equal(t, want, c.Light(), c.Name)
		if want {
			assert.Equal(t, DarkTextTone, c.TextTone())
		} else {
			assert.Equal(t, LightTextTone, c.TextTone())
		}
	}
}

func TestBuildCards(t *testing.T) {
	records := make([]sheet.Record, 12)
	for i := range records {
		records[i] = record(sheet.FieldTitle, "same title")
	}

	cards := BuildCards(records)
	require.Len(t, cards, 12)
	for i, c := range cards {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, ColorAt(i), c.Color, "color depends only on position")
	}
	assert.Equal(t, cards[0].Color, cards[9].Color)
	assert.True(t, cards[2].DarkText())
	assert.False(t, cards[0].DarkText())
	assert.Empty(t, BuildCards(nil))
}

func TestCard_VerbatimText(t *testing.T) {
	c := BuildCards([]sheet.Record{record(sheet.FieldTitle, "**Raw**", sheet.FieldDescription, "*kept*")})[0]
	assert.Equal(t, "**Raw**", c.Title())
	assert.Equal(t, "*kept*", c.Description())
}

func TestOpenTarget(t *testing.T) {
	tests := []struct {
		name   string
		record sheet.Record
		want   string
		wantOK bool
	}{
		{name: "none", record: record(sheet.FieldTitle, "x")},
		{name: "all empty", record: record(sheet.FieldFile, "", sheet.FieldLink, "", sheet.FieldProjectFile, "")},
		{
			name:   "empty file falls through to link",
			record: record(sheet.FieldFile, "", sheet.FieldLink, "http://x"),
			want:   "http://x", wantOK: true,
		},
		{
			name:   "file wins",
			record: record(sheet.FieldFile, "http://f", sheet.FieldLink, "http://l", sheet.FieldProjectFile, "http://p"),
			want:   "http://f", wantOK: true,
		},
		{
			name:   "project file last",
			record: record(sheet.FieldProjectFile, "http://p"),
			want:   "http://p", wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OpenTarget(tt.record)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetailLines(t *testing.T) {
	tests := []struct {
		name   string
		record sheet.Record
		want   []string
	}{
		{name: "split and trimmed", record: record(sheet.FieldDetails, "Step 1; Step 2 ;;"), want: []string{"Step 1", "Step 2"}},
		{name: "absent", record: record(sheet.FieldTitle, "x"), want: []string{NoDetailsText}},
		{name: "empty", record: record(sheet.FieldDetails, ""), want: []string{NoDetailsText}},
		{name: "single", record: record(sheet.FieldDetails, "only one"), want: []string{"only one"}},
		{name: "order kept", record: record(sheet.FieldDetails, "c;b;a"), want: []string{"c", "b", "a"}},
		{name: "only separators", record: record(sheet.FieldDetails, ";;"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetailLines(tt.record))
		})
	}
}

func TestBuildDetail(t *testing.T) {
	card := Card{
		Index: 7,
		Color: ColorAt(7),
		Record: record(
			sheet.FieldTitle, "Launch",
			sheet.FieldDescription, "Go live",
			sheet.FieldLink, "http://x",
			sheet.FieldDetails, "**Ship** it; test",
		),
	}

	d := BuildDetail(card)
	assert.Equal(t, "Launch", d.Title)
	assert.Equal(t, "Go live", d.Description)
	assert.True(t, d.HasOpen)
	assert.Equal(t, "http://x", d.OpenURL)
	assert.Equal(t, NoDeadlineText, d.Deadline)
	assert.Equal(t, NoTaskText, d.Task)
	assert.Equal(t, []string{"**Ship** it", "test"}, d.Lines)
	assert.Equal(t, "orange", d.Color.Name, "detail keeps the card color")
}

func TestBuildDetail_NoOpenAction(t *testing.T) {
	d := BuildDetail(Card{Record: record(sheet.FieldTitle, "x", sheet.FieldDeadline, "Friday", sheet.FieldTask, "Ops")})
	assert.False(t, d.HasOpen)
	assert.Empty(t, d.OpenURL)
	assert.Equal(t, "Friday", d.Deadline)
	assert.Equal(t, "Ops", d.Task)
}

func TestSelect(t *testing.T) {
	cards := BuildCards([]sheet.Record{record(sheet.FieldTitle, "a"), record(sheet.FieldTitle, "b")})

	c, err := Select(cards, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", c.Title())

	for _, idx := range []int{-1, 2} {
		_, err = Select(cards, idx)
		require.ErrorIs(t, err, ErrNoSuchProject)
	}
}
