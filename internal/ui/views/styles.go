package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	RowNumber   lipgloss.Style
	Cell        lipgloss.Style
	Expander    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Prompt      lipgloss.Style

	Focus       lipgloss.Style
	FocusDim    lipgloss.Style
	Selected    lipgloss.Style
	SelectedRow lipgloss.Style
	EdgeTop     lipgloss.Style
	EdgeBottom  lipgloss.Style
	EdgeFirst   lipgloss.Style
	EdgeLast    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	selected := lipgloss.NewStyle().Background(lipgloss.Color("238"))
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		RowNumber:   lipgloss.NewStyle().Faint(true),
		Cell:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Expander:    lipgloss.NewStyle().Faint(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow

		Focus:       lipgloss.NewStyle().Reverse(true),
		FocusDim:    lipgloss.NewStyle().Underline(true),
		Selected:    selected,
		SelectedRow: selected,
		EdgeTop:     selected.Bold(true).Foreground(lipgloss.Color("226")),
		EdgeBottom:  selected.Underline(true).Foreground(lipgloss.Color("226")),
		EdgeFirst:   selected.Foreground(lipgloss.Color("226")),
		EdgeLast:    selected.Italic(true).Foreground(lipgloss.Color("226")),
	}
}
