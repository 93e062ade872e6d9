// Package pyramid generates and manages collections of named 2D stars
// arranged into layered pyramid patterns.
package pyramid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// DefaultColor is the color assigned when none is given.
const DefaultColor = "white"

// Star is a named point on the plane with a brightness magnitude.
// Stars are passed and stored by value.
type Star struct {
	X         float64 // Horizontal coordinate
	Y         float64 // Vertical coordinate
	Name      string  // Display name (lookup returns the first match)
	Magnitude float64 // Brightness (lower = brighter)
	Color     string  // Color tag, "white" by default
}

// NewStar creates a star with the default color.
func NewStar(x, y float64, name string, magnitude float64) Star {
	return Star{X: x, Y: y, Name: name, Magnitude: magnitude, Color: DefaultColor}
}

// Coord returns the star position as a geom coordinate.
func (s Star) Coord() geom.Coord {
	return geom.Coord{X: s.X, Y: s.Y}
}

func (s Star) String() string {
	return fmt.Sprintf("%s (%s, %s) mag:%s", s.Name, formatFloat(s.X), formatFloat(s.Y), formatFloat(s.Magnitude))
}

// formatFloat prints the shortest representation that round-trips. Values
// with magnitude in [1e-4, 1e16) use plain decimal notation, others use an
// exponent. A decimal point is always kept so whole numbers read as 1.0.
func formatFloat(v float64) string {
	format := byte('g')
	if a := math.Abs(v); a == 0 || (a >= 1e-4 && a < 1e16) {
		format = 'f'
	}
	s := strconv.FormatFloat(v, format, -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// starName picks the k-th name from names, falling back to Star_<k>.
func starName(names []string, k int) string {
	if k < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Star_%d", k)
}

// generatedMagnitude cycles 1.0, 1.5, 2.0, 2.5, 3.0 by creation index.
func generatedMagnitude(k int) float64 {
	return 1.0 + float64(k%5)*0.5
}
