package board

// Color is a card color of the palette.
type Color struct {
	// Name is the palette identifier; the HTML surface uses it as a CSS class.
	Name string
	// Hex is the background used by the terminal surface.
	Hex string
}

// DarkTextTone is the text color used on light palette entries.
const DarkTextTone = "#333"

// LightTextTone is the default text color on palette entries.
const LightTextTone = "#ffffff"

// Palette is the fixed, ordered card palette.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Palette = [...]Color{
	{Name: "blue", Hex: "#3b82f6"},
	{Name: "purple", Hex: "#8b5cf6"},
	{Name: "yellow", Hex: "#facc15"},
	{Name: "red", Hex: "#ef4444"},
	{Name: "green", Hex: "#22c55e"},
	{Name: "pink", Hex: "#ec4899"},
	{Name: "teal", Hex: "#14b8a6"},
	{Name: "orange", Hex: "#fb923c"},
	{Name: "indigo", Hex: "#6366f1"},
}

// lightColors are the two lightest palette entries.
//
//nolint:gochecknoglobals // Fixed lookup table.
var lightColors = map[string]bool{
	"yellow": true,
	"orange": true,
}

// ColorAt returns the palette color for the card at position i.
// Negative positions wrap the same way as non-negative ones.
func ColorAt(i int) Color {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// Light reports whether c is light enough to need dark text.
func (c Color) Light() bool {
	return lightColors[c.Name]
}

// TextTone returns the text color to use on c.
func (c Color) TextTone() string {
	if c.Light() {
		return DarkTextTone
	}
	return LightTextTone
}

// String returns the palette name.
func (c Color) String() string {
	return c.Name
}
