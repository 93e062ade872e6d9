package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-pyramid/internal/pyramid"
)

const (
	colorTitle  = "135" // violet
	colorMuted  = "60"  // muted purple
	colorAccent = "229" // bright gold
	colorBorder = "60"

	// Star colors (grayscale so the selected layer stands out)
	colorStarBright  = "255" // bright white
	colorStarMedium  = "250" // medium gray
	colorStarDim     = "244" // dim gray
	colorStarVeryDim = "240" // very dim gray
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))
	paneStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)
)

// starColor returns the display color for a magnitude. Brighter stars
// (lower magnitude) get lighter grays.
func starColor(mag float64) lipgloss.Color {
	switch {
	case mag < 1.5:
		return colorStarBright
	case mag < 2.5:
		return colorStarMedium
	case mag < 3.0:
		return colorStarDim
	default:
		return colorStarVeryDim
	}
}

// renderStarGlyph renders the plot glyph for s in its magnitude color.
func renderStarGlyph(s pyramid.Star) string {
	style := lipgloss.NewStyle().Foreground(starColor(s.Magnitude))
	return style.Render(string(pyramid.StarGlyph(s.Magnitude)))
}
