package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Header        lipgloss.Style
	HeaderActive  lipgloss.Style
	HeaderFocus   lipgloss.Style
	Separator     lipgloss.Style
	EvenRow       lipgloss.Style
	OddRow        lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusActive  lipgloss.Style
	StatusSuccess lipgloss.Style
	Scroll        lipgloss.Style
	Help          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		HeaderActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		HeaderFocus:   lipgloss.NewStyle().Bold(true).Underline(true).Background(lipgloss.Color("238")),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		EvenRow:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OddRow:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:          lipgloss.NewStyle().Faint(true),
	}
}

// RecordStatus returns the style for a parking record status cell
func (s *Styles) RecordStatus(status string) lipgloss.Style {
	switch status {
	case "active", "parked":
		return s.StatusActive
	case "completed", "paid":
		return s.StatusSuccess
	case "":
		return s.Status
	default:
		return s.StatusError
	}
}
