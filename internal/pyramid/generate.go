package pyramid

import (
	"fmt"
	"math"
	"strings"

	"github.com/jbeda/geom"
)

// Shape identifies a generator layout.
type Shape string

const (
	ShapeTriangle Shape = "triangle"
	ShapeSquare   Shape = "square"
	ShapeCircular Shape = "circular"
)

// Shapes lists the supported generator layouts.
var Shapes = []Shape{ShapeTriangle, ShapeSquare, ShapeCircular}

// ParseShape parses a shape name. "circle" is accepted for circular.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle", "tri":
		return ShapeTriangle, nil
	case "square":
		return ShapeSquare, nil
	case "circular", "circle":
		return ShapeCircular, nil
	default:
		names := make([]string, len(Shapes))
		for i, sh := range Shapes {
			names[i] = string(sh)
		}
		return "", fmt.Errorf("unknown shape %q (want one of %s)", s, strings.Join(names, ", "))
	}
}

// Spec describes a single generator call.
type Spec struct {
	Shape    Shape
	Size     int      // base width, base size, or ring count
	PerLayer int      // stars per ring (circular only)
	Names    []string // optional explicit names
}

// Generate runs the generator selected by spec.Shape.
func (p *Pyramid) Generate(spec Spec) error {
	switch spec.Shape {
	case ShapeTriangle:
		p.Triangle(spec.Size, spec.Names)
	case ShapeSquare:
		p.Square(spec.Size, spec.Names)
	case ShapeCircular:
		p.Circular(spec.Size, spec.PerLayer, spec.Names)
	default:
		return fmt.Errorf("unknown shape %q", spec.Shape)
	}
	return nil
}

// Triangle appends baseWidth layers where layer L holds L+1 stars evenly
// spaced across (-1, 1) at y = 1 - L/2.
//
// Like the other generators it does not add stars to the flat list.
func (p *Pyramid) Triangle(baseWidth int, names []string) {
	k := 0
	for layer := 0; layer < baseWidth; layer++ {
		count := layer + 1
		spacing := 2.0 / float64(count+1)
		y := 1.0 - float64(layer)*0.5

		stars := make([]Star, 0, count)
		for i := 0; i < count; i++ {
			x := -1.0 + float64(i+1)*spacing
			stars = append(stars, NewStar(x, y, starName(names, k), generatedMagnitude(k)))
			k++
		}
		p.layers = append(p.layers, stars)
	}
}

// Square appends baseSize layers where layer L is an n×n grid (n =
// baseSize-L) of cell-centered stars covering [-1,1]×[-1,1], row-major
// from the top.
func (p *Pyramid) Square(baseSize int, names []string) {
	k := 0
	for layer := 0; layer < baseSize; layer++ {
		n := baseSize - layer
		cell := 2.0 / float64(n)

		stars := make([]Star, 0, n*n)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				x := -1.0 + (float64(col)+0.5)*cell
				y := 1.0 - (float64(row)+0.5)*cell
				stars = append(stars, NewStar(x, y, starName(names, k), generatedMagnitude(k)))
				k++
			}
		}
		p.layers = append(p.layers, stars)
	}
}

// Circular appends layerCount concentric rings. Ring L has radius
// (L+1)/layerCount and perLayer stars spaced evenly from angle 0.
func (p *Pyramid) Circular(layerCount, perLayer int, names []string) {
	if layerCount <= 0 || perLayer <= 0 {
		return
	}

	k := 0
	for layer := 0; layer < layerCount; layer++ {
		radius := float64(layer+1) / float64(layerCount)

		stars := make([]Star, 0, perLayer)
		for i := 0; i < perLayer; i++ {
			angle := 2 * math.Pi * float64(i) / float64(perLayer)
			unit := geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}
			pos := unit.Times(radius)
			stars = append(stars, NewStar(pos.X, pos.Y, starName(names, k), generatedMagnitude(k)))
			k++
		}
		p.layers = append(p.layers, stars)
	}
}
