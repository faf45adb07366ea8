package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/markup"
	listview "github.com/rshade/sheetboard/internal/tui/list"
)

// Status messages.
const (
	msgNoSelection = "No project selected"
	msgNoOpenFile  = "This project has no file or link"
)

// DashboardModel is the Bubble Tea model of the project dashboard: a sidebar
// with the date and the card list, and a detail pane for the selected card.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type DashboardModel struct {
	ctx       context.Context
	loader    *board.Loader
	opener    Opener
	formatter markup.Formatter

	// Interactive components
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	list     *listview.Model[board.Card]
	viewport viewport.Model

	// View state
	state   ViewState
	date    string
	failure string
	detail  *board.Detail
	status  string

	// Display configuration
	width  int
	height int
}

// Option configures a DashboardModel.
type Option func(*DashboardModel)

// WithOpener replaces the function used by the open action.
func WithOpener(o Opener) Option {
	return func(m *DashboardModel) {
		if o != nil {
			m.opener = o
		}
	}
}

// WithDate sets the sidebar date. The default is the local date at construction.
func WithDate(t time.Time) Option {
	return func(m *DashboardModel) {
		m.date = board.DateLabel(t)
	}
}

// WithFormatter replaces the markup formatter used for detail lines.
func WithFormatter(f markup.Formatter) Option {
	return func(m *DashboardModel) {
		m.formatter = f
	}
}

// NewDashboardModel creates the dashboard in the loading state. Init starts the load.
func NewDashboardModel(ctx context.Context, loader *board.Loader, opts ...Option) DashboardModel {
	m := DashboardModel{
		ctx:       ctx,
		loader:    loader,
		opener:    func(string) error { return nil },
		formatter: markup.NewFormatter(markup.NewTerminal()),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		state:     ViewStateLoading,
		date:      board.DateLabel(time.Now()),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.list = listview.New[board.Card](nil, cardHeight, m.listHeight(), sidebarWidth, renderCard)
	m.viewport = viewport.New(m.detailContentWidth(), m.detailContentHeight())
	m.help.Width = m.width
	return m
}

// Init starts the spinner and the load (Bubble Tea interface).
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.loader))
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case CardsLoadedMsg:
		return m.handleCardsLoaded(msg), nil
	case LoadFailedMsg:
		return m.handleLoadFailed(msg), nil
	case OpenedMsg:
		return m.handleOpened(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DashboardModel) handleCardsLoaded(msg CardsLoadedMsg) DashboardModel {
	m.state = ViewStateList
	m.failure = ""
	m.detail = nil
	m.list.SetItems(msg.Cards)
	m.viewport.SetContent("")
	m.status = board.CountLabel(len(msg.Cards))
	return m
}

func (m DashboardModel) handleLoadFailed(msg LoadFailedMsg) DashboardModel {
	m.state = ViewStateError
	m.failure = msg.Message
	m.detail = nil
	m.list.SetItems(nil)
	m.viewport.SetContent("")
	m.status = ""
	return m
}

func (m DashboardModel) handleOpened(msg OpenedMsg) DashboardModel {
	if msg.Err != nil {
		m.status = "Could not open " + msg.URL + ": " + msg.Err.Error()
	} else {
		m.status = "Opened " + msg.URL
	}
	return m
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.state {
	case ViewStateList:
		return m.handleListKey(msg)
	case ViewStateDetail:
		return m.handleDetailKey(msg)
	case ViewStateError:
		if key.Matches(msg, m.keys.Reload) {
			return m.reload()
		}
		return m, nil
	case ViewStateLoading, ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m DashboardModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		m.selectCard(m.list.Selected())
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.openDetail()
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	m.list.HandleKey(msg)
	return m, nil
}

func (m DashboardModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = ViewStateList
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.openDetail()
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// selectCard shows the detail of the card at index, replacing any previous detail.
// The card's own color is used, not one derived from the current cursor.
func (m *DashboardModel) selectCard(index int) {
	card, err := board.Select(m.list.Items(), index)
	if err != nil {
		m.status = msgNoSelection
		return
	}
	d := board.BuildDetail(card)
	m.detail = &d
	m.renderDetailContent()
	m.viewport.GotoTop()
	m.state = ViewStateDetail
}

func (m DashboardModel) openDetail() (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.status = msgNoSelection
		return m, nil
	}
	if !m.detail.HasOpen {
		m.status = msgNoOpenFile
		return m, nil
	}
	return m, openCmd(m.ctx, m.opener, m.detail.OpenURL)
}

// reload starts a new single-attempt load.
func (m DashboardModel) reload() (tea.Model, tea.Cmd) {
	m.state = ViewStateLoading
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.loader))
}

func (m *DashboardModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.list.SetSize(sidebarWidth, m.listHeight())
	m.viewport.Width = m.detailContentWidth()
	m.viewport.Height = m.detailContentHeight()
	m.renderDetailContent()
}

func (m *DashboardModel) renderDetailContent() {
	if m.detail == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(RenderDetail(*m.detail, m.formatter, m.detailContentWidth()))
}

func (m DashboardModel) listHeight() int {
	return max(m.height-sidebarHeaderHeight-statusHeight, minHeight)
}

// detailContentWidth is the detail pane width minus its border and padding.
func (m DashboardModel) detailContentWidth() int {
	return max(m.width-sidebarWidth-1-borderPadding*2, 1)
}

func (m DashboardModel) detailContentHeight() int {
	return max(m.height-statusHeight-borderPadding, minHeight)
}

// State returns the current view state.
func (m DashboardModel) State() ViewState {
	return m.state
}

// Cards returns the cards currently shown in the list region.
func (m DashboardModel) Cards() []board.Card {
	return m.list.Items()
}

// Detail returns the detail currently shown, or nil before any selection.
func (m DashboardModel) Detail() *board.Detail {
	return m.detail
}
