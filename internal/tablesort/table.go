package tablesort

import (
	"slices"
)

// Header is a column title together with its current indicator glyph
type Header struct {
	Column    Column
	Indicator string
	State     HeaderState
}

// Label returns the title followed by the indicator, if any
func (h Header) Label() string {
	if h.Indicator == "" {
		return h.Column.Title
	}
	return h.Column.Title + " " + h.Indicator
}

// Table owns the rows, the sorter and the sort state of one displayed table.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Table struct {
	sorter *Sorter
	rows   []Row
	state  SortState
	glyphs Glyphs
}

// NewTable creates a new table with no sort applied
func NewTable(sorter *Sorter, rows []Row, glyphs Glyphs) *Table {
	if glyphs.Ascending == "" && glyphs.Descending == "" {
		glyphs = DefaultGlyphs()
	}
	return &Table{
		sorter: sorter,
		rows:   slices.Clone(rows),
		glyphs: glyphs,
	}
}

// Activate handles an activation of the header of columnID. It returns false
// and changes nothing when the column cannot be sorted.
func (t *Table) Activate(columnID string) bool {
	if !t.sorter.CanSort(columnID) {
		return false
	}
	next := Transition(t.state, columnID)
	t.rows = t.sorter.Sort(t.rows, next.Column, next.Direction == Ascending)
	t.state = next
	return true
}

// Apply sets the state directly and sorts accordingly
func (t *Table) Apply(state SortState) bool {
	if !t.sorter.CanSort(state.Column) {
		return false
	}
	t.rows = t.sorter.Sort(t.rows, state.Column, state.Direction == Ascending)
	t.state = state
	return true
}

// Reset replaces the rows, keeping the current sort applied to them
func (t *Table) Reset(rows []Row) {
	if t.state.IsSorted() {
		t.rows = t.sorter.Sort(rows, t.state.Column, t.state.Direction == Ascending)
		return
	}
	t.rows = slices.Clone(rows)
}

// Rows returns the rows in display order
func (t *Table) Rows() []Row {
	return slices.Clone(t.rows)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// State returns the current sort state
func (t *Table) State() SortState {
	return t.state
}

// Columns returns the declared columns
func (t *Table) Columns() []Column {
	return t.sorter.Columns()
}

// Headers returns one header per column with at most one indicator set
func (t *Table) Headers() []Header {
	columns := t.sorter.Columns()
	headers := make([]Header, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, Header{
			Column:    col,
			Indicator: Indicator(t.state, col.ID, t.glyphs),
			State:     t.state.HeaderState(col.ID),
		})
	}
	return headers
}
