package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"parkview/internal/tablesort"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// renderHelpContent renders the full help shown in the pager
func (r *HelpRenderer) renderHelpContent(columns []tablesort.Column, glyphs tablesort.Glyphs) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("parkview help"))
	help.WriteString("\n\n")

	sections := []string{"Sorting", "Scrolling", "Other"}
	for i, group := range r.keys.FullHelp() {
		help.WriteString(sectionStyle.Render(sections[i]))
		help.WriteString("\n")
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Columns"))
	help.WriteString("\n")
	for i, col := range columns {
		kind := col.Kind.String()
		if !col.Sortable {
			kind += ", not sortable"
		}
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8d", i+1)), descStyle.Render(fmt.Sprintf("%s (%s)", col.Title, kind))))
	}
	help.WriteString("\n")

	help.WriteString(descStyle.Render(fmt.Sprintf(
		"Activating a column sorts it ascending (%s); activating it again flips to descending (%s).\n"+
			"Rows with equal values keep their previous order. Unreadable dates and numbers sort first.",
		glyphs.Ascending, glyphs.Descending)))
	help.WriteString("\n")

	return help.String()
}
