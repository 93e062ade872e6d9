package pyramid

import (
	"math"
	"slices"
	"sort"
)

// Pyramid holds a flat list of stars and an ordered grouping of them into
// layers.
//
// The layer grouping is normally derived from the flat list (see Regroup).
// Generators are the exception: they append layers without adding their
// stars to the flat list, so after a generator call Layers and Stars may
// disagree until AddStar, Regroup, Flatten or an import resynchronizes them.
//
// A Pyramid is not safe for concurrent use.
type Pyramid struct {
	stars  []Star
	layers [][]Star
}

// New creates an empty pyramid.
func New() *Pyramid {
	return &Pyramid{}
}

// AddStar appends a star to the flat list and re-derives the layers.
func (p *Pyramid) AddStar(s Star) {
	p.stars = append(p.stars, s)
	p.Regroup()
}

// Regroup rebuilds the layers from the flat star list, discarding any
// layers produced by generators.
func (p *Pyramid) Regroup() {
	p.layers = groupLayers(p.stars)
}

// Flatten replaces the flat list with the stars of every layer, in layer
// order. The layer partition is left unchanged.
func (p *Pyramid) Flatten() {
	p.stars = p.layerStars()
}

func (p *Pyramid) layerStars() []Star {
	var stars []Star
	for _, layer := range p.layers {
		stars = append(stars, layer...)
	}
	return stars
}

// Reset clears both the flat list and the layers.
func (p *Pyramid) Reset() {
	p.stars = nil
	p.layers = nil
}

// Len returns the number of stars in the flat list.
func (p *Pyramid) Len() int {
	return len(p.stars)
}

// LayerCount returns the number of layers.
func (p *Pyramid) LayerCount() int {
	return len(p.layers)
}

// Stars returns a copy of the flat star list.
func (p *Pyramid) Stars() []Star {
	return slices.Clone(p.stars)
}

// Layers returns a copy of the layer grouping.
func (p *Pyramid) Layers() [][]Star {
	out := make([][]Star, len(p.layers))
	for i, layer := range p.layers {
		out[i] = slices.Clone(layer)
	}
	return out
}

// Layer returns the stars of layer i, or nil if i is out of range.
func (p *Pyramid) Layer(i int) []Star {
	if i < 0 || i >= len(p.layers) {
		return nil
	}
	return slices.Clone(p.layers[i])
}

// StarByName returns the first star in the flat list with the given name.
func (p *Pyramid) StarByName(name string) (Star, bool) {
	for _, s := range p.stars {
		if s.Name == name {
			return s, true
		}
	}
	return Star{}, false
}

// StarsByMagnitude returns the stars whose magnitude lies in
// [minMag, maxMag], in flat-list order.
func (p *Pyramid) StarsByMagnitude(minMag, maxMag float64) []Star {
	var out []Star
	for _, s := range p.stars {
		if s.Magnitude >= minMag && s.Magnitude <= maxMag {
			out = append(out, s)
		}
	}
	return out
}

// layerKey quantizes y to the nearest 0.5. Ties round half to even, so
// 0.75 and 1.25 both land in the 1.0 bucket.
func layerKey(y float64) float64 {
	return math.RoundToEven(y*2) / 2
}

// groupLayers clusters stars into layers by vertical position, highest first.
func groupLayers(stars []Star) [][]Star {
	if len(stars) <= 1 {
		return [][]Star{slices.Clone(stars)}
	}

	sorted := slices.Clone(stars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	buckets := make(map[float64][]Star)
	var keys []float64
	for _, s := range sorted {
		k := layerKey(s.Y)
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], s)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(keys)))

	layers := make([][]Star, 0, len(keys))
	for _, k := range keys {
		layers = append(layers, buckets[k])
	}
	return layers
}
