package app

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Cowboy palette.
const (
	colorSaddle     = "#8B4513"
	colorSienna     = "#A0522D"
	colorPeru       = "#CD853F"
	colorCream      = "#FFF8F0"
	colorFirebrick  = "#B22222"
	colorDarkBrown  = "#5D4037"
	colorLightBrown = "#A1887F"
)

// Theme holds the styles of every screen.
type Theme struct {
	Title   lipgloss.Style
	Accent  lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Card    lipgloss.Style
	Badge   lipgloss.Style
}

// NewTheme renders for w; colors are dropped when w is not a terminal.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorSaddle)),
		Accent: r.NewStyle().
			Foreground(lipgloss.Color(colorSienna)),
		Text: r.NewStyle().
			Foreground(lipgloss.Color(colorDarkBrown)),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color(colorLightBrown)),
		Success: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPeru)),
		Error: r.NewStyle().
			Foreground(lipgloss.Color(colorFirebrick)),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorLightBrown)).
			Padding(0, 1),
		Badge: r.NewStyle().
			Foreground(lipgloss.Color(colorCream)).
			Background(lipgloss.Color(colorSienna)).
			Padding(0, 1),
	}
}

// brand is the header of the welcome and login screens.
func (t Theme) brand() string {
	return t.Title.Render("MICROMUU") + "  " + t.Muted.Render("~ ranch life, organized ~")
}
