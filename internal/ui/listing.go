package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-pyramid/internal/pyramid"
)

// RenderStyled renders the layer listing with terminal styling. It carries
// the same information as pyramid.WriteASCII.
func RenderStyled(p *pyramid.Pyramid) string {
	layers := p.Layers()
	if len(layers) == 0 {
		return mutedStyle.Render("No stars in pyramid") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Star Pyramid"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d layers", len(layers))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("═", 50)))
	b.WriteString("\n")

	for i, layer := range layers {
		b.WriteString(headerStyle.Render(fmt.Sprintf("Layer %d", i+1)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" (%d stars)", len(layer))))
		b.WriteString("\n")
		for _, s := range layer {
			b.WriteString("  ")
			b.WriteString(renderStarLine(s))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderStarLine renders one star as "glyph name (x, y) mag:m".
func renderStarLine(s pyramid.Star) string {
	name := lipgloss.NewStyle().Foreground(starColor(s.Magnitude)).Render(s.Name)
	pos := mutedStyle.Render(fmt.Sprintf("(%+.3f, %+.3f)", s.X, s.Y))
	mag := fmt.Sprintf("mag:%.2f", s.Magnitude)
	line := fmt.Sprintf("%s %s %s %s", renderStarGlyph(s), name, pos, mag)
	if s.Color != "" && s.Color != pyramid.DefaultColor {
		line += " " + mutedStyle.Render(s.Color)
	}
	return line
}
