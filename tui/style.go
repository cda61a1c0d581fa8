package tui

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	Message    lipgloss.Style
	Prompt     lipgloss.Style

	PickerDir      lipgloss.Style
	PickerEntry    lipgloss.Style
	PickerSelected lipgloss.Style
}

func DefaultStyle() Style { return StyleFor(lipgloss.DefaultRenderer()) }

// StyleFor builds the default style on renderer r.
func StyleFor(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Text:   r.NewStyle(),
		Cursor: r.NewStyle().Reverse(true),

		Tab:       r.NewStyle().Foreground(lipgloss.Color("245")),
		TabActive: r.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true),

		StatusBar:  r.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		StatusMode: r.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("114")).Bold(true),
		Message:    r.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt:     r.NewStyle(),

		PickerDir:      r.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		PickerEntry:    r.NewStyle(),
		PickerSelected: r.NewStyle().Reverse(true),
	}
}
