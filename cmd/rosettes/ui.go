package main

import "github.com/charmbracelet/lipgloss"

// Styles for list output. Lipgloss degrades these to plain text when
// the terminal reports no color support.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9d45"))

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	swatchStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// swatch renders a small colored block for a theme color.
func swatch(background, text string) string {
	return swatchStyle.
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(text)).
		Render("abc")
}
