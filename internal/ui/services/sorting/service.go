package sorting

import (
	"github.com/apex/log"

	"parkview/internal/eventbus"
	"parkview/internal/tablesort"
)

// Service handles sorting of the displayed history table
type Service struct {
	table *tablesort.Table
	bus   eventbus.EventBus
}

// NewService creates a new sorting service over the given columns
func NewService(bus eventbus.EventBus, columns []tablesort.Column, glyphs tablesort.Glyphs, opts ...tablesort.Option) *Service {
	return &Service{
		table: tablesort.NewTable(tablesort.NewSorter(columns, opts...), nil, glyphs),
		bus:   bus,
	}
}

// SetRows replaces the rows, keeping the current sort
func (s *Service) SetRows(rows []tablesort.Row) {
	s.table.Reset(rows)
}

// Activate handles activation of a column header
func (s *Service) Activate(columnID string) bool {
	old := s.table.State()
	if !s.table.Activate(columnID) {
		log.WithField("column", columnID).Debug("sorting: column not sortable, ignoring")
		return false
	}
	s.publish(old)
	return true
}

// ActivateIndex activates the header at the given column position
func (s *Service) ActivateIndex(index int) bool {
	columns := s.table.Columns()
	if index < 0 || index >= len(columns) {
		return false
	}
	return s.Activate(columns[index].ID)
}

// Apply sets the sort state directly, e.g. from config or a CLI flag
func (s *Service) Apply(state tablesort.SortState) bool {
	old := s.table.State()
	if !s.table.Apply(state) {
		log.WithField("column", state.Column).Warn("sorting: unknown sort column")
		return false
	}
	s.publish(old)
	return true
}

// ApplySpec parses and applies a sort spec such as "-fee"
func (s *Service) ApplySpec(spec string) bool {
	state, ok := ParseSpec(spec)
	if !ok {
		return false
	}
	return s.Apply(state)
}

// GetState returns the current sort state
func (s *Service) GetState() tablesort.SortState {
	return s.table.State()
}

// Rows returns the rows in display order
func (s *Service) Rows() []tablesort.Row {
	return s.table.Rows()
}

// Headers returns the column headers with their indicators
func (s *Service) Headers() []tablesort.Header {
	return s.table.Headers()
}

// Columns returns the declared columns
func (s *Service) Columns() []tablesort.Column {
	return s.table.Columns()
}

// GetModeString returns a string representation of the current sort
func (s *Service) GetModeString() string {
	state := s.table.State()
	if !state.IsSorted() {
		return "unsorted"
	}
	for _, col := range s.table.Columns() {
		if col.ID == state.Column {
			return col.Title + " " + state.Direction.String()
		}
	}
	return state.Column + " " + state.Direction.String()
}

func (s *Service) publish(old tablesort.SortState) {
	state := s.table.State()
	log.WithFields(log.Fields{
		"from": FormatSpec(old),
		"to":   FormatSpec(state),
		"rows": s.table.Len(),
	}).Debug("sorting: applied")

	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.SortAppliedEvent{
		Column:     state.Column,
		Descending: state.Direction == tablesort.Descending,
		Rows:       s.table.Len(),
	})
}
