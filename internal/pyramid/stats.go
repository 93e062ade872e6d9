package pyramid

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the flat star list.
type Stats struct {
	TotalStars  int           `json:"total_stars"`
	TotalLayers int           `json:"total_layers"`
	Magnitude   MagnitudeStat `json:"magnitude_stats"`
	Position    PositionStat  `json:"position_stats"`
}

// MagnitudeStat holds magnitude aggregates.
type MagnitudeStat struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// PositionStat holds the coordinate ranges, each as [min, max].
type PositionStat struct {
	XRange [2]float64 `json:"x_range"`
	YRange [2]float64 `json:"y_range"`
}

// Bounds returns the ranges as a rectangle.
func (ps PositionStat) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: ps.XRange[0], Y: ps.YRange[0]},
		Max: geom.Coord{X: ps.XRange[1], Y: ps.YRange[1]},
	}
}

// Statistics computes aggregates over the flat star list. It returns false
// when there are no stars.
func (p *Pyramid) Statistics() (Stats, bool) {
	if len(p.stars) == 0 {
		return Stats{}, false
	}

	mags := make([]float64, len(p.stars))
	for i, s := range p.stars {
		mags[i] = s.Magnitude
	}
	bounds := starBounds(p.stars)

	return Stats{
		TotalStars:  len(p.stars),
		TotalLayers: len(p.layers),
		Magnitude: MagnitudeStat{
			Min:     floats.Min(mags),
			Max:     floats.Max(mags),
			Average: stat.Mean(mags, nil),
		},
		Position: PositionStat{
			XRange: [2]float64{bounds.Min.X, bounds.Max.X},
			YRange: [2]float64{bounds.Min.Y, bounds.Max.Y},
		},
	}, true
}

// starBounds returns the bounding rectangle of stars. stars must be non-empty.
func starBounds(stars []Star) geom.Rect {
	r := geom.Rect{Min: stars[0].Coord(), Max: stars[0].Coord()}
	for _, s := range stars[1:] {
		r.ExpandToContainCoord(s.Coord())
	}
	return r
}

// WriteStats writes a key/value listing of the pyramid statistics.
func WriteStats(w io.Writer, p *Pyramid) {
	st, ok := p.Statistics()
	if !ok {
		fmt.Fprintln(w, "  error: No stars in pyramid")
		return
	}

	fmt.Fprintf(w, "  total_stars: %d\n", st.TotalStars)
	fmt.Fprintf(w, "  total_layers: %d\n", st.TotalLayers)
	fmt.Fprintf(w, "  magnitude_stats: min=%s max=%s average=%s\n",
		formatFloat(st.Magnitude.Min), formatFloat(st.Magnitude.Max), formatFloat(st.Magnitude.Average))
	fmt.Fprintf(w, "  position_stats: x_range=(%s, %s) y_range=(%s, %s)\n",
		formatFloat(st.Position.XRange[0]), formatFloat(st.Position.XRange[1]),
		formatFloat(st.Position.YRange[0]), formatFloat(st.Position.YRange[1]))
}
