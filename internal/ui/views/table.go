package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"parkview/internal/tablesort"
)

// ColumnGap is the space between two columns
const ColumnGap = 2

// Layout holds the computed column widths of a table
type Layout struct {
	Widths []int
}

// NewLayout sizes every column to fit its title, the widest indicator glyph
// and every cell, so toggling a sort never shifts the columns
func NewLayout(columns []tablesort.Column, rows []tablesort.Row, glyphs tablesort.Glyphs) Layout {
	glyphWidth := max(lipgloss.Width(glyphs.Ascending), lipgloss.Width(glyphs.Descending))

	widths := make([]int, len(columns))
	for i, col := range columns {
		w := lipgloss.Width(col.Title)
		if col.Sortable && glyphWidth > 0 {
			w += 1 + glyphWidth
		}
		widths[i] = w
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row.Cells) {
				widths[i] = max(widths[i], lipgloss.Width(row.Cells[i].Text))
			}
		}
	}
	return Layout{Widths: widths}
}

// Width returns the total width of a rendered line
func (l Layout) Width() int {
	total := 0
	for i, w := range l.Widths {
		if i > 0 {
			total += ColumnGap
		}
		total += w
	}
	return total
}

// ColumnAt returns the column index under horizontal position x. Clicks on
// the gap between two columns hit nothing.
func (l Layout) ColumnAt(x int) (int, bool) {
	start := 0
	for i, w := range l.Widths {
		if x >= start && x < start+w {
			return i, true
		}
		start += w + ColumnGap
	}
	return -1, false
}

// pad left-aligns s in a field of width w
func pad(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// joinCells joins already padded cells with the column gap
func joinCells(cells []string) string {
	return strings.Join(cells, strings.Repeat(" ", ColumnGap))
}
