package main

import "github.com/charmbracelet/lipgloss"

// Overlay text is wrapped in these markers so the view can pick it out and
// style it instead of printing the markers.
const (
	overlayOpen     = "⟦"
	overlayClose    = "⟧"
	overlayTemplate = overlayOpen + "%s" + overlayClose
)

type style struct {
	LineNum lipgloss.Style
	Text    lipgloss.Style
	Overlay lipgloss.Style
	Cursor  lipgloss.Style
	Status  lipgloss.Style
}

func defaultStyle() style {
	return style{
		LineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:    lipgloss.NewStyle(),
		Overlay: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("237")).Italic(true),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
