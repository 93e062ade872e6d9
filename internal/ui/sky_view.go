package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-pyramid/internal/pyramid"
)

const (
	glyphFocused = '◆'
	colorFocused = colorAccent
	colorCanvas  = "236" // very dark background
)

// SkyViewModel renders the layer stars as a scatter plot, highlighting the
// focused layer.
type SkyViewModel struct {
	width  int
	height int

	pyramid    *pyramid.Pyramid
	layerCount int
	focusLayer int
}

// NewSkyViewModel creates a sky view over p.
func NewSkyViewModel(p *pyramid.Pyramid) SkyViewModel {
	return SkyViewModel{
		pyramid:    p,
		layerCount: p.LayerCount(),
	}
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// SetFocus selects the layer to highlight.
func (m SkyViewModel) SetFocus(layer int) SkyViewModel {
	m.focusLayer = layer
	return m
}

// View renders the canvas and a status line.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Sky view requires larger terminal"
	}

	// Reserve two columns/rows for the border and one row for status
	canvas := m.renderSkyCanvas(m.width-2, m.height-3)

	var b strings.Builder
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m SkyViewModel) renderStatus() string {
	if m.layerCount == 0 {
		return "No stars in pyramid"
	}
	layer := m.pyramid.Layer(m.focusLayer)
	line := fmt.Sprintf(">>> Layer %d of %d | %d stars", m.focusLayer+1, m.layerCount, len(layer))
	return accentStyle.Render(line)
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorCanvas
		}
	}

	// Focused layer drawn last, one mark per star
	cfg := pyramid.SkyConfig{Width: width, Height: height}
	for _, pt := range pyramid.Project(m.pyramid, cfg) {
		canvas[pt.Row][pt.Col] = pyramid.StarGlyph(pt.Star.Magnitude)
		colors[pt.Row][pt.Col] = starColor(pt.Star.Magnitude)
	}
	for _, pt := range pyramid.ProjectLayer(m.pyramid, m.focusLayer, cfg) {
		canvas[pt.Row][pt.Col] = glyphFocused
		colors[pt.Row][pt.Col] = colorFocused
	}

	border := mutedStyle
	var b strings.Builder
	b.WriteString(border.Render("┌" + strings.Repeat("─", width) + "┐"))
	b.WriteString("\n")
	for y := 0; y < height; y++ {
		b.WriteString(border.Render("│"))
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		b.WriteString(border.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("└" + strings.Repeat("─", width) + "┘"))
	return b.String()
}
