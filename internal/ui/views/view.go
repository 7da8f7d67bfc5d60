package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"parkview/internal/tablesort"
)

// Screen lines above the table body. The header line index is used for
// mouse hit testing.
const (
	TitleLine     = 0
	HeaderLine    = 1
	SeparatorLine = 2
	BodyTop       = 3
	footerLines   = 2
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Source         string
	Headers        []tablesort.Header
	Rows           []tablesort.Row
	Layout         Layout
	FocusedColumn  int
	ViewportOffset int
	StatusMessage  string
	StatusIsError  bool
	SortMode       string
	Loading        bool
	HelpModel      help.Model
	KeyMap         help.KeyMap
	StatusColumn   int // index of the column coloured by record status, -1 for none
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// BodyHeight returns how many rows fit on a screen of the given height
func BodyHeight(height int) int {
	return max(1, height-BodyTop-footerLines)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.renderTitle(state))
	b.WriteString("\n")
	b.WriteString(r.renderHeader(state))
	b.WriteString("\n")
	b.WriteString(r.styles.Separator.Render(strings.Repeat("─", max(1, state.Layout.Width()))))
	b.WriteString("\n")

	bodyHeight := BodyHeight(state.Height)
	body := r.renderBody(state, bodyHeight)
	b.WriteString(body)

	// Keep the footer pinned to the bottom
	rendered := strings.Count(body, "\n")
	for i := rendered; i < bodyHeight; i++ {
		b.WriteString("\n")
	}

	b.WriteString(r.renderStatus(state))
	b.WriteString("\n")
	if state.KeyMap != nil {
		b.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return b.String()
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("parkview")
	source := state.Source
	if source == "" {
		source = "no history loaded"
	}
	info := r.styles.Dim.Render(fmt.Sprintf("  %s · %d records", source, len(state.Rows)))
	if state.Loading {
		info += r.styles.Dim.Render("  ⟳ loading")
	}
	return logo + info
}

func (r *Renderer) renderHeader(state ViewState) string {
	cells := make([]string, 0, len(state.Headers))
	for i, h := range state.Headers {
		w := 0
		if i < len(state.Layout.Widths) {
			w = state.Layout.Widths[i]
		}
		text := pad(h.Label(), w)

		style := r.styles.Header
		if h.State != tablesort.Unsorted {
			style = r.styles.HeaderActive
		}
		if i == state.FocusedColumn {
			style = style.Inherit(r.styles.HeaderFocus)
		}
		cells = append(cells, style.Render(text))
	}
	return joinCells(cells)
}

func (r *Renderer) renderBody(state ViewState, height int) string {
	if len(state.Rows) == 0 {
		return r.styles.Dim.Render("No parking records.") + "\n"
	}

	end := min(len(state.Rows), state.ViewportOffset+height)
	var b strings.Builder
	for i := state.ViewportOffset; i < end; i++ {
		row := state.Rows[i]
		rowStyle := r.styles.EvenRow
		if i%2 == 1 {
			rowStyle = r.styles.OddRow
		}

		cells := make([]string, 0, len(state.Layout.Widths))
		for c, w := range state.Layout.Widths {
			text := ""
			if c < len(row.Cells) {
				text = row.Cells[c].Text
			}
			style := rowStyle
			if c == state.StatusColumn {
				style = r.styles.RecordStatus(text)
			}
			cells = append(cells, style.Render(pad(text, w)))
		}
		b.WriteString(joinCells(cells))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderStatus(state ViewState) string {
	left := "sort: " + state.SortMode
	if state.StatusMessage != "" {
		left += "  " + state.StatusMessage
	}

	style := r.styles.Status
	if state.StatusIsError {
		style = r.styles.StatusError
	}
	line := style.Render(left)

	bodyHeight := BodyHeight(state.Height)
	if len(state.Rows) > bodyHeight {
		end := min(len(state.Rows), state.ViewportOffset+bodyHeight)
		line += r.styles.Scroll.Render(fmt.Sprintf("  [%d-%d of %d]", state.ViewportOffset+1, end, len(state.Rows)))
	}
	return line
}
