package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"parkview/internal/tablesort"
)

// RenderPlain renders headers and rows as a static table, used for --plain
// output and the pager. color=false produces text without escape codes.
func RenderPlain(headers []tablesort.Header, rows []tablesort.Row, color bool) string {
	titles := make([]string, 0, len(headers))
	for _, h := range headers {
		titles = append(titles, h.Label())
	}

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range headers {
			if i < len(row.Cells) {
				cells[i] = row.Cells[i].Text
			}
		}
		data = append(data, cells)
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)
	if color {
		styles := NewStyles()
		headerStyle = headerStyle.Inherit(styles.Header)
		evenRowStyle = evenRowStyle.Inherit(styles.EvenRow)
		oddRowStyle = oddRowStyle.Inherit(styles.OddRow)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers(titles...).
		Rows(data...)

	return t.Render()
}
