package pyramid

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jbeda/geom"
)

// Star glyphs by magnitude
const (
	GlyphBright = '✶' // mag < 1.5
	GlyphMedium = '✸' // mag 1.5-3.0
	GlyphDim    = '·' // mag >= 3.0
)

// WriteASCII writes a text listing of every layer and its stars.
func WriteASCII(w io.Writer, p *Pyramid) {
	if len(p.layers) == 0 {
		fmt.Fprintln(w, "No stars in pyramid")
		return
	}

	fmt.Fprintln(w, "Star Pyramid (ASCII Representation):")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for i, layer := range p.layers {
		fmt.Fprintf(w, "Layer %d:\n", i+1)
		for _, s := range layer {
			fmt.Fprintf(w, "  %s\n", s)
		}
		fmt.Fprintln(w)
	}
}

// StarGlyph returns the plot glyph for a magnitude. Brighter stars (lower
// magnitude) get heavier symbols.
func StarGlyph(mag float64) rune {
	switch {
	case mag < 1.5:
		return GlyphBright
	case mag < 3.0:
		return GlyphMedium
	default:
		return GlyphDim
	}
}

// SkyConfig controls the text scatter plot.
type SkyConfig struct {
	Width  int // plot columns inside the border
	Height int // plot rows inside the border
}

// DefaultSkyConfig returns a plot size that fits an 80-column terminal.
func DefaultSkyConfig() SkyConfig {
	return SkyConfig{Width: 48, Height: 20}
}

// PlotPoint is a star placed on the plot grid.
type PlotPoint struct {
	Col, Row int
	Layer    int
	Star     Star
}

// Project maps every layer star onto a cfg.Width × cfg.Height grid spanning
// the bounds of the layers. Row 0 is the top (highest y). When several stars
// share a cell only the brightest is kept.
func Project(p *Pyramid, cfg SkyConfig) []PlotPoint {
	all := p.layerStars()
	if cfg.Width < 1 || cfg.Height < 1 || len(all) == 0 {
		return nil
	}
	bounds := starBounds(all)

	type cell struct{ col, row int }
	index := make(map[cell]int)
	var points []PlotPoint

	for li := range p.layers {
		for _, pt := range projectLayer(p, li, bounds, cfg) {
			c := cell{pt.Col, pt.Row}
			if i, ok := index[c]; ok {
				if pt.Star.Magnitude < points[i].Star.Magnitude {
					points[i] = pt
				}
				continue
			}
			index[c] = len(points)
			points = append(points, pt)
		}
	}
	return points
}

// ProjectLayer maps the stars of layer i onto the same grid as Project,
// one point per star with no de-duplication. It returns nil when i is out
// of range.
func ProjectLayer(p *Pyramid, i int, cfg SkyConfig) []PlotPoint {
	all := p.layerStars()
	if cfg.Width < 1 || cfg.Height < 1 || len(all) == 0 || i < 0 || i >= len(p.layers) {
		return nil
	}
	return projectLayer(p, i, starBounds(all), cfg)
}

func projectLayer(p *Pyramid, i int, bounds geom.Rect, cfg SkyConfig) []PlotPoint {
	points := make([]PlotPoint, 0, len(p.layers[i]))
	for _, s := range p.layers[i] {
		col := scaleToGrid(s.X, bounds.Min.X, bounds.Width(), cfg.Width)
		row := cfg.Height - 1 - scaleToGrid(s.Y, bounds.Min.Y, bounds.Height(), cfg.Height)
		points = append(points, PlotPoint{Col: col, Row: row, Layer: i, Star: s})
	}
	return points
}

// scaleToGrid maps v in [lo, lo+span] to 0..cells-1. A zero span puts
// every value in the middle cell.
func scaleToGrid(v, lo, span float64, cells int) int {
	if span <= 0 {
		return cells / 2
	}
	i := int(math.Round((v - lo) / span * float64(cells-1)))
	if i < 0 {
		return 0
	}
	if i >= cells {
		return cells - 1
	}
	return i
}

// WriteSkyPlot writes a bordered text scatter plot of the layer stars
// followed by a legend.
func WriteSkyPlot(w io.Writer, p *Pyramid, cfg SkyConfig) {
	points := Project(p, cfg)
	if len(points) == 0 {
		fmt.Fprintln(w, "No stars in pyramid")
		return
	}

	grid := make([][]rune, cfg.Height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cfg.Width))
	}
	for _, pt := range points {
		grid[pt.Row][pt.Col] = StarGlyph(pt.Star.Magnitude)
	}

	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", cfg.Width))
	for _, row := range grid {
		fmt.Fprintf(w, "│%s│\n", string(row))
	}
	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", cfg.Width))

	all := p.layerStars()
	b := starBounds(all)
	fmt.Fprintf(w, "%c mag < 1.5   %c mag < 3.0   %c fainter\n", GlyphBright, GlyphMedium, GlyphDim)
	fmt.Fprintf(w, "%d stars in %d layers, %s\n", len(all), len(p.layers), formatBounds(b))
}

func formatBounds(r geom.Rect) string {
	return fmt.Sprintf("x [%.2f, %.2f] y [%.2f, %.2f]", r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}
