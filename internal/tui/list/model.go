package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders an item. The selected parameter indicates whether this
// item is currently selected.
type RenderFunc[T any] func(item T, selected bool, width int) string

// KeyMap holds the navigation bindings of the list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns arrow, page and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last")),
	}
}

// Model is a windowed list of fixed-height items.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	// selected is the currently selected item index (0-based)
	selected int

	// visibleFrom is the first visible item index
	visibleFrom int

	// height and width of the viewport in cells
	height int
	width  int

	// itemHeight is the number of rows one rendered item occupies
	itemHeight int
}

// New creates a list model.
// itemHeight is the number of rows one rendered item occupies, including spacing.
func New[T any](items []T, itemHeight, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	if itemHeight < 1 {
		itemHeight = 1
	}
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		height:     height,
		width:      width,
		itemHeight: itemHeight,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleKeyMsg moves the selection. It reports whether the key was consumed.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) bool {
	if len(m.items) == 0 {
		return false
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetSelected(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetSelected(m.selected + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.SetSelected(m.selected - m.PageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.SetSelected(m.selected + m.PageSize())
	case key.Matches(msg, m.keys.Home):
		m.SetSelected(0)
	case key.Matches(msg, m.keys.End):
		m.SetSelected(len(m.items) - 1)
	default:
		return false
	}
	return true
}

// HandleKey applies a navigation key and reports whether it was consumed.
func (m *Model[T]) HandleKey(msg tea.KeyMsg) bool {
	return m.handleKeyMsg(msg)
}

// PageSize returns how many items fit in the viewport (at least one).
func (m *Model[T]) PageSize() int {
	n := m.height / m.itemHeight
	if n < 1 {
		return 1
	}
	return n
}

// updateVisibleRange scrolls the window just enough to keep the selection visible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		return
	}

	page := m.PageSize()
	if m.selected < m.visibleFrom {
		m.visibleFrom = m.selected
	}
	if m.selected >= m.visibleFrom+page {
		m.visibleFrom = m.selected - page + 1
	}

	// Do not leave empty space at the bottom when the list is scrolled.
	if maxFrom := len(m.items) - page; m.visibleFrom > maxFrom {
		m.visibleFrom = max(maxFrom, 0)
	}
}

// View renders the visible items.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	to := m.VisibleTo()
	var b strings.Builder
	for i := m.visibleFrom; i < to; i++ {
		if i > m.visibleFrom {
			b.WriteString("\n")
		}
		b.WriteString(m.renderFunc(m.items[i], i == m.selected, m.width))
	}
	return b.String()
}

// SetItems replaces all items and resets the selection to the first one.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.visibleFrom = 0
	m.updateVisibleRange()
}

// Items returns the items.
func (m *Model[T]) Items() []T {
	return m.items
}

// SetSize updates the viewport dimensions.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// ItemCount returns the total number of items in the list.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *Model[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return min(m.visibleFrom+m.PageSize(), len(m.items))
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// SelectedItem returns the currently selected item, or nil if the list is empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
