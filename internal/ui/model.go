package ui

import (
	"fmt"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"parkview/internal/config"
	"parkview/internal/domain"
	"parkview/internal/eventbus"
	"parkview/internal/history"
	"parkview/internal/tablesort"
	"parkview/internal/ui/services/sorting"
	"parkview/internal/ui/views"
)

// Loader reads a parking history from a source path
type Loader func(path string) (domain.History, error)

// Options configures a Model
type Options struct {
	Source string // history file, overrides the config
	Sort   string // sort spec such as "-fee", overrides the config
	Loader Loader
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	loader Loader
	source string

	sorting  *sorting.Service
	renderer *views.Renderer
	layout   views.Layout
	glyphs   tablesort.Glyphs

	keys         keyMap
	help         help.Model
	helpRenderer *HelpRenderer
	pager        *PagerOps

	width          int
	height         int
	focusedColumn  int
	viewportOffset int
	statusColumn   int
	loading        bool
	statusMessage  string
	statusIsError  bool
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	glyphs := tablesort.Glyphs{
		Ascending:  cfg.UISettings.AscendingGlyph,
		Descending: cfg.UISettings.DescendingGlyph,
	}
	columns := history.Columns()

	m := &Model{
		bus:          bus,
		config:       cfg,
		loader:       opts.Loader,
		source:       opts.Source,
		sorting:      sorting.NewService(bus, columns, glyphs, tablesort.WithDateLayouts(cfg.DateLayouts...)),
		renderer:     views.NewRenderer(),
		glyphs:       glyphs,
		keys:         newKeyMap(),
		help:         help.New(),
		pager:        NewPagerOps(),
		statusColumn: -1,
	}
	m.helpRenderer = NewHelpRenderer(m.keys)

	if m.loader == nil {
		m.loader = history.Load
	}
	if m.source == "" {
		m.source = cfg.HistoryFile
	}
	for i, col := range columns {
		if col.ID == history.ColumnStatus {
			m.statusColumn = i
		}
	}

	// Initial sort: flag first, then config
	if opts.Sort != "" && !m.sorting.ApplySpec(opts.Sort) {
		m.setError(fmt.Sprintf("unknown sort column %q", opts.Sort))
	}
	if !m.sorting.GetState().IsSorted() && cfg.Sort.Column != "" {
		m.sorting.Apply(tablesort.SortState{
			Column:    cfg.Sort.Column,
			Direction: directionOf(cfg.Sort.Descending),
		})
	}
	if state := m.sorting.GetState(); state.IsSorted() {
		m.focusedColumn = m.columnIndex(state.Column)
	}

	m.layout = views.NewLayout(columns, nil, glyphs)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.source == "" {
		return nil
	}
	m.loading = true
	return m.loadCmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampViewport()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case historyLoadedMsg:
		m.loading = false
		m.setRows(msg.history)
		m.setStatus(fmt.Sprintf("loaded %d records", len(msg.history.Records)))
		if m.bus != nil {
			m.bus.Publish(eventbus.HistoryLoadedEvent{History: msg.history})
		}

	case historyFailedMsg:
		m.loading = false
		log.WithError(msg.err).WithField("source", msg.source).Error("ui: history load failed")
		m.setError(msg.err.Error())
		if m.bus != nil {
			m.bus.Publish(eventbus.HistoryLoadFailedEvent{Source: msg.source, Err: msg.err})
		}

	case pagerClosedMsg:
		if msg.err != nil {
			log.WithError(msg.err).Warn("ui: pager failed")
			m.setError("pager: " + msg.err.Error())
		}

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ReloadRequestedEvent:
		if e.Source != "" {
			m.source = e.Source
		}
		return m, m.reload()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.sorting.Columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Column):
		m.activateColumn(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Left):
		if m.focusedColumn > 0 {
			m.focusedColumn--
		}

	case key.Matches(msg, m.keys.Right):
		if m.focusedColumn < len(columns)-1 {
			m.focusedColumn++
		}

	case key.Matches(msg, m.keys.Activate):
		m.activateColumn(m.focusedColumn)

	case key.Matches(msg, m.keys.Up):
		m.scroll(-1)

	case key.Matches(msg, m.keys.Down):
		m.scroll(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-views.BodyHeight(m.height))

	case key.Matches(msg, m.keys.PageDown):
		m.scroll(views.BodyHeight(m.height))

	case key.Matches(msg, m.keys.Top):
		m.viewportOffset = 0

	case key.Matches(msg, m.keys.Bottom):
		m.viewportOffset = len(m.sorting.Rows())
		m.clampViewport()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()

	case key.Matches(msg, m.keys.Pager):
		return m, m.pager.showCmd(views.RenderPlain(m.sorting.Headers(), m.sorting.Rows(), true))

	case key.Matches(msg, m.keys.Help):
		return m, m.pager.showCmd(m.helpRenderer.renderHelpContent(columns, m.glyphs))
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.config.UISettings.Mouse {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll(-1)
	case tea.MouseButtonWheelDown:
		m.scroll(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || msg.Y != views.HeaderLine {
			return m, nil
		}
		if idx, ok := m.layout.ColumnAt(msg.X); ok {
			m.activateColumn(idx)
		}
	}
	return m, nil
}

// activateColumn sorts by the column at index and moves focus there.
// Unsortable columns are ignored.
func (m *Model) activateColumn(index int) {
	columns := m.sorting.Columns()
	if index < 0 || index >= len(columns) {
		return
	}
	m.focusedColumn = index
	if !m.sorting.ActivateIndex(index) {
		return
	}
	m.viewportOffset = 0
	m.setStatus("")
}

func (m *Model) setRows(h domain.History) {
	rows := history.Rows(h.Records, history.Formatter{
		DateLayouts:    m.config.DateLayouts,
		CurrencySymbol: m.config.UISettings.CurrencySymbol,
	})
	m.sorting.SetRows(rows)
	m.layout = views.NewLayout(m.sorting.Columns(), rows, m.glyphs)
	if h.Source != "" {
		m.source = h.Source
	}
	m.clampViewport()
}

func (m *Model) reload() tea.Cmd {
	if m.source == "" {
		m.setError("no history file configured")
		return nil
	}
	m.loading = true
	return m.loadCmd()
}

func (m *Model) loadCmd() tea.Cmd {
	source := m.source
	loader := m.loader
	return func() tea.Msg {
		h, err := loader(source)
		if err != nil {
			return historyFailedMsg{source: source, err: err}
		}
		return historyLoadedMsg{history: h}
	}
}

func (m *Model) scroll(delta int) {
	m.viewportOffset += delta
	m.clampViewport()
}

func (m *Model) clampViewport() {
	maxOffset := len(m.sorting.Rows()) - views.BodyHeight(m.height)
	if m.viewportOffset > maxOffset {
		m.viewportOffset = maxOffset
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

func (m *Model) columnIndex(id string) int {
	for i, col := range m.sorting.Columns() {
		if col.ID == id {
			return i
		}
	}
	return 0
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Source:         m.source,
		Headers:        m.sorting.Headers(),
		Rows:           m.sorting.Rows(),
		Layout:         m.layout,
		FocusedColumn:  m.focusedColumn,
		ViewportOffset: m.viewportOffset,
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		SortMode:       m.sorting.GetModeString(),
		Loading:        m.loading,
		HelpModel:      m.help,
		KeyMap:         m.keys,
		StatusColumn:   m.statusColumn,
	})
}

func directionOf(descending bool) tablesort.Direction {
	if descending {
		return tablesort.Descending
	}
	return tablesort.Ascending
}
