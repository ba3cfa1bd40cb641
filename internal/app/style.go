package app

import "github.com/charmbracelet/lipgloss"

// Style controls the application's rendering.
type Style struct {
	Text    lipgloss.Style
	Cursor  lipgloss.Style
	Welcome lipgloss.Style
	Status  lipgloss.Style
}

// DefaultStyle returns the styles bound to lipgloss' default renderer.
func DefaultStyle() Style {
	return StyleFor(lipgloss.DefaultRenderer())
}

// StyleFor returns the default styles bound to r.
func StyleFor(r *lipgloss.Renderer) Style {
	return Style{
		Text:    r.NewStyle(),
		Cursor:  r.NewStyle().Reverse(true),
		Welcome: r.NewStyle().Foreground(lipgloss.Color("245")),
		Status:  r.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	}
}
