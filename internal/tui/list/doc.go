// Package listview provides a windowed list component for Bubble Tea.
//
// Items are rendered as fixed-height blocks (one card per block). Only the
// blocks that fit in the viewport are rendered, and the window follows the
// selection. Navigation uses the bindings in KeyMap: up/down (j/k),
// pgup/pgdn, home/end (g/G).
package listview
