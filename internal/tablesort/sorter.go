package tablesort

import (
	"slices"
)

// columnStrategy is the resolved extraction for one sortable column
type columnStrategy struct {
	index   int
	extract extractor
	compare comparator
}

// Sorter reorders rows by one column. Strategies are resolved once, when the
// sorter is created.
type Sorter struct {
	columns    []Column
	strategies map[string]columnStrategy
}

// Option configures a Sorter
type Option func(*sorterOptions)

type sorterOptions struct {
	dateLayouts []string
}

// WithDateLayouts sets the layouts used to parse date columns
func WithDateLayouts(layouts ...string) Option {
	return func(o *sorterOptions) {
		if len(layouts) > 0 {
			o.dateLayouts = layouts
		}
	}
}

// NewSorter creates a new sorter for the given columns
func NewSorter(columns []Column, opts ...Option) *Sorter {
	o := sorterOptions{dateLayouts: DefaultDateLayouts}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Sorter{
		columns:    slices.Clone(columns),
		strategies: make(map[string]columnStrategy),
	}
	for i, col := range columns {
		if !col.Sortable || col.ID == "" {
			continue
		}
		// First declaration wins on duplicate IDs
		if _, exists := s.strategies[col.ID]; exists {
			continue
		}
		extract, compare := strategyFor(col.Kind, o.dateLayouts)
		s.strategies[col.ID] = columnStrategy{index: i, extract: extract, compare: compare}
	}
	return s
}

// Columns returns the declared columns
func (s *Sorter) Columns() []Column {
	return slices.Clone(s.columns)
}

// CanSort reports whether columnID names a declared sortable column
func (s *Sorter) CanSort(columnID string) bool {
	_, ok := s.strategies[columnID]
	return ok
}

// Sort returns a new slice holding rows ordered by columnID. The sort is
// stable in both directions. Unknown or unsortable columns leave the order
// unchanged. The input slice is not modified.
func (s *Sorter) Sort(rows []Row, columnID string, ascending bool) []Row {
	out := slices.Clone(rows)
	if out == nil {
		out = []Row{}
	}

	strategy, ok := s.strategies[columnID]
	if !ok || len(out) < 2 {
		return out
	}

	// Extract each key once instead of on every comparison
	keyed := make([]keyedRow, len(out))
	for i, row := range out {
		var cell Cell
		present := strategy.index < len(row.Cells)
		if present {
			cell = row.Cells[strategy.index]
		}
		keyed[i] = keyedRow{row: row, key: strategy.extract(cell, present)}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRow) int {
		c := strategy.compare(a.key, b.key)
		if !ascending {
			c = -c
		}
		return c
	})

	for i := range keyed {
		out[i] = keyed[i].row
	}
	return out
}

type keyedRow struct {
	row Row
	key key
}
