package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkview/internal/config"
	"parkview/internal/domain"
	"parkview/internal/eventbus"
	"parkview/internal/history"
	"parkview/internal/tablesort"
	"parkview/internal/ui/views"
)

func testHistory() domain.History {
	return domain.History{
		Source: "history.json",
		Records: []domain.ParkingRecord{
			{ID: "1", EntryTime: "2024-01-05T08:00:00", LicensePlate: "AAA111", SlotNumber: "L101", Duration: "125", Fee: "12.50", Status: "completed"},
			{ID: "2", EntryTime: "2024-01-01T09:00:00", LicensePlate: "BBB222", SlotNumber: "N03", Duration: "60", Fee: "8.00", Status: "completed"},
			{ID: "3", EntryTime: "2024-01-05T11:00:00", LicensePlate: "CCC333", SlotNumber: "E07", Duration: "30", Fee: "3.25", Status: "active"},
			{ID: "4", EntryTime: "garbage", LicensePlate: "DDD444", SlotNumber: "W01", Fee: "oops", Status: "active"},
		},
	}
}

func newTestModel(t *testing.T, cfg *config.Config, opts Options) *Model {
	t.Helper()
	if opts.Loader == nil {
		opts.Loader = func(path string) (domain.History, error) {
			h := testHistory()
			h.Source = path
			return h, nil
		}
	}
	if opts.Source == "" {
		opts.Source = "history.json"
	}
	m := NewModel(nil, cfg, opts)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func ids(m *Model) string {
	var b strings.Builder
	for _, r := range m.sorting.Rows() {
		b.WriteString(r.Payload.(domain.ParkingRecord).ID)
	}
	return b.String()
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestModelLoadsUnsorted(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), Options{})

	assert.Equal(t, "1234", ids(m))
	assert.False(t, m.sorting.GetState().IsSorted())
	assert.Equal(t, "loaded 4 records", m.statusMessage)
	assert.False(t, m.loading)

	view := m.View()
	assert.Contains(t, view, "history.json · 4 records")
	assert.Contains(t, view, "sort: unsorted")
}

func TestModelDefaultConfigStartsUnsorted(t *testing.T) {
	m := newTestModel(t, nil, Options{})
	assert.Equal(t, "1234", ids(m))
	assert.Contains(t, m.View(), "sort: unsorted")
	for _, h := range m.sorting.Headers() {
		assert.Empty(t, h.Indicator, h.Column.ID)
	}

	// first activation of any column is ascending
	press(m, "1")
	assert.Equal(t, tablesort.SortState{Column: history.ColumnDate}, m.sorting.GetState())
	assert.Equal(t, "4213", ids(m))
}

func TestModelConfigSort(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sort = config.SortConfig{Column: history.ColumnDate}
	m := newTestModel(t, cfg, Options{})
	assert.Equal(t, "4213", ids(m))
	assert.Equal(t, 0, m.focusedColumn)
}

func TestModelNumberKeysToggle(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), Options{})
	feeKey := "6" // Date Plate Slot Type Duration Fee Status

	press(m, feeKey)
	assert.Equal(t, tablesort.SortState{Column: history.ColumnFee}, m.sorting.GetState())
	assert.Equal(t, "4321", ids(m))
	assert.Equal(t, 5, m.focusedColumn)

	press(m, feeKey)
	assert.Equal(t, tablesort.Descending, m.sorting.GetState().Direction)
	assert.Equal(t, "1234", ids(m))

	press(m, "1")
	assert.Equal(t, tablesort.SortState{Column: history.ColumnDate}, m.sorting.GetState())
	assert.Equal(t, "4213", ids(m))

	headers := m.sorting.Headers()
	var glyphs []string
	for _, h := range headers {
		if h.Indicator != "" {
			glyphs = append(glyphs, h.Column.ID+h.Indicator)
		}
	}
	assert.Equal(t, []string{"date▼"}, glyphs)

	// out of range digit is ignored
	press(m, "9")
	assert.Equal(t, tablesort.SortState{Column: history.ColumnDate}, m.sorting.GetState())
}

func TestModelFocusAndEnter(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), Options{})

	press(m, "left", "right", "right", "enter")
	assert.Equal(t, 2, m.focusedColumn)
	assert.Equal(t, history.ColumnSlot, m.sorting.GetState().Column)
	// E07 L101 N03 W01
	assert.Equal(t, "3124", ids(m))

	for i := 0; i < 10; i++ {
		press(m, "l")
	}
	assert.Equal(t, len(history.Columns())-1, m.focusedColumn)
}

func TestModelMouseClickOnHeader(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), Options{})

	// x position of the fee column
	x := 0
	for i := 0; i < 5; i++ {
		x += m.layout.Widths[i] + views.ColumnGap
	}

	click := func(x, y int) {
		m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	}

	click(x, views.HeaderLine)
	assert.Equal(t, tablesort.SortState{Column: history.ColumnFee}, m.sorting.GetState())

	click(x+1, views.HeaderLine)
	assert.Equal(t, tablesort.Descending, m.sorting.GetState().Direction)

	// clicks on the body or the gap do nothing
	click(x, views.BodyTop)
	click(x-1, views.HeaderLine)
	assert.Equal(t, tablesort.SortState{Column: history.ColumnFee, Direction: tablesort.Descending}, m.sorting.GetState())

	// releases are not activations
	m.Update(tea.MouseMsg{X: 0, Y: views.HeaderLine, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	assert.Equal(t, history.ColumnFee, m.sorting.GetState().Column)
}

func TestModelMouseDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.Mouse = false
	m := newTestModel(t, cfg, Options{})

	m.Update(tea.MouseMsg{X: 0, Y: views.HeaderLine, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.False(t, m.sorting.GetState().IsSorted())
}

func TestModelSortFlagOverridesConfig(t *testing.T) {
	m := newTestModel(t, nil, Options{Sort: "-fee"})
	assert.Equal(t, "1234", ids(m))
	assert.Equal(t, 5, m.focusedColumn)

	// an unknown column in the flag falls back to the configured sort
	cfg := config.DefaultConfig()
	cfg.Sort = config.SortConfig{Column: history.ColumnDate}
	m = NewModel(nil, cfg, Options{Sort: "colour", Source: "history.json"})
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "colour")
	assert.Equal(t, tablesort.SortState{Column: history.ColumnDate}, m.sorting.GetState())
}

func TestModelReloadKeepsSort(t *testing.T) {
	calls := 0
	loader := func(path string) (domain.History, error) {
		calls++
		h := testHistory()
		if calls > 1 {
			h.Records = h.Records[:2]
		}
		return h, nil
	}
	m := newTestModel(t, config.DefaultConfig(), Options{Loader: loader})
	press(m, "6")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	m.Update(cmd())

	assert.Equal(t, 2, calls)
	assert.Equal(t, "21", ids(m))
	assert.Equal(t, history.ColumnFee, m.sorting.GetState().Column)
}

func TestModelReloadEvent(t *testing.T) {
	var paths []string
	loader := func(path string) (domain.History, error) {
		paths = append(paths, path)
		return testHistory(), nil
	}
	m := newTestModel(t, config.DefaultConfig(), Options{Loader: loader})

	_, cmd := m.Update(EventMsg{Event: eventbus.ReloadRequestedEvent{Source: "other.json"}})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, []string{"history.json", "other.json"}, paths)
}

func TestModelLoadFailure(t *testing.T) {
	loader := func(path string) (domain.History, error) {
		return domain.History{}, errors.New("failed to read history file: boom")
	}
	m := newTestModel(t, config.DefaultConfig(), Options{Loader: loader})

	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "boom")
	assert.Contains(t, m.View(), "No parking records.")
}

func TestModelScrolling(t *testing.T) {
	loader := func(path string) (domain.History, error) {
		h := domain.History{Source: path}
		for i := 0; i < 100; i++ {
			h.Records = append(h.Records, testHistory().Records...)
		}
		return h, nil
	}
	m := newTestModel(t, config.DefaultConfig(), Options{Loader: loader})
	body := views.BodyHeight(30)

	press(m, "j", "j")
	assert.Equal(t, 2, m.viewportOffset)
	press(m, "k", "k", "k")
	assert.Equal(t, 0, m.viewportOffset)

	press(m, "G")
	assert.Equal(t, 400-body, m.viewportOffset)
	press(m, "j")
	assert.Equal(t, 400-body, m.viewportOffset)

	// sorting jumps back to the top
	press(m, "1")
	assert.Equal(t, 0, m.viewportOffset)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 1, m.viewportOffset)
	press(m, "g")
	assert.Equal(t, 0, m.viewportOffset)
}

func TestModelPagerWithoutProgram(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "program not set")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpContentListsColumns(t *testing.T) {
	r := NewHelpRenderer(newKeyMap())
	out := r.renderHelpContent(history.Columns(), tablesort.DefaultGlyphs())

	for _, col := range history.Columns() {
		assert.Contains(t, out, col.Title)
	}
	assert.Contains(t, out, "sort column")
	assert.Contains(t, out, "ascending (▼)")
}
