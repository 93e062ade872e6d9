package pyramid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestTriangle_LayerSizes(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		t.Run(fmt.Sprintf("base=%d", n), func(t *testing.T) {
			p := New()
			p.Triangle(n, nil)

			require.Equal(t, n, p.LayerCount())
			total := 0
			for i := 0; i < n; i++ {
				assert.Len(t, p.Layer(i), i+1, "layer %d", i)
				total += len(p.Layer(i))
			}
			assert.Equal(t, n*(n+1)/2, total)
		})
	}
}

func TestTriangle_Positions(t *testing.T) {
	p := New()
	p.Triangle(3, nil)

	top := p.Layer(0)
	require.Len(t, top, 1)
	assert.InDelta(t, 0.0, top[0].X, tolerance)
	assert.InDelta(t, 1.0, top[0].Y, tolerance)

	second := p.Layer(1)
	require.Len(t, second, 2)
	assert.InDelta(t, -1.0/3, second[0].X, tolerance)
	assert.InDelta(t, 1.0/3, second[1].X, tolerance)
	for _, s := range second {
		assert.InDelta(t, 0.5, s.Y, tolerance)
	}

	for _, s := range p.Layer(2) {
		assert.InDelta(t, 0.0, s.Y, tolerance)
		assert.Greater(t, s.X, -1.0)
		assert.Less(t, s.X, 1.0)
	}
}

func TestSquare_LayerSizes(t *testing.T) {
	p := New()
	p.Square(4, nil)

	require.Equal(t, 4, p.LayerCount())
	for i := 0; i < 4; i++ {
		assert.Len(t, p.Layer(i), (4-i)*(4-i), "layer %d", i)
	}
}

func TestSquare_Positions(t *testing.T) {
	p := New()
	p.Square(2, nil)

	want := [][2]float64{{-0.5, 0.5}, {0.5, 0.5}, {-0.5, -0.5}, {0.5, -0.5}}
	base := p.Layer(0)
	require.Len(t, base, len(want))
	for i, w := range want {
		assert.InDelta(t, w[0], base[i].X, tolerance, "star %d x", i)
		assert.InDelta(t, w[1], base[i].Y, tolerance, "star %d y", i)
	}

	apex := p.Layer(1)
	require.Len(t, apex, 1)
	assert.InDelta(t, 0.0, apex[0].X, tolerance)
	assert.InDelta(t, 0.0, apex[0].Y, tolerance)
}

func TestCircular_RingRadii(t *testing.T) {
	p := New()
	p.Circular(3, 6, nil)

	require.Equal(t, 3, p.LayerCount())
	for i := 0; i < 3; i++ {
		ring := p.Layer(i)
		require.Len(t, ring, 6)
		want := float64(i+1) / 3
		for _, s := range ring {
			c := s.Coord()
			assert.InDelta(t, want, c.Magnitude(), tolerance, "ring %d star %s", i, s.Name)
		}
	}

	first := p.Layer(0)[0]
	assert.InDelta(t, 1.0/3, first.X, tolerance, "ring starts at angle 0")
	assert.InDelta(t, 0.0, first.Y, tolerance)
}

func TestGenerators_MagnitudeSequence(t *testing.T) {
	tests := []struct {
		name string
		gen  func(p *Pyramid)
	}{
		{"triangle", func(p *Pyramid) { p.Triangle(5, nil) }},
		{"square", func(p *Pyramid) { p.Square(3, nil) }},
		{"circular", func(p *Pyramid) { p.Circular(4, 7, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			tt.gen(p)

			k := 0
			for _, layer := range p.Layers() {
				for _, s := range layer {
					assert.Equal(t, 1.0+float64(k%5)*0.5, s.Magnitude, "star %d", k)
					assert.Equal(t, DefaultColor, s.Color)
					k++
				}
			}
			assert.Greater(t, k, 5)
		})
	}
}

func TestGenerators_Names(t *testing.T) {
	p := New()
	p.Triangle(3, []string{"Sirius", "Vega"})

	var names []string
	for _, layer := range p.Layers() {
		for _, s := range layer {
			names = append(names, s.Name)
		}
	}
	assert.Equal(t, []string{"Sirius", "Vega", "Star_2", "Star_3", "Star_4", "Star_5"}, names)
}

func TestGenerators_NonPositiveSizes(t *testing.T) {
	p := New()
	p.Triangle(0, nil)
	p.Triangle(-3, nil)
	p.Square(0, nil)
	p.Square(-1, nil)
	p.Circular(0, 5, nil)
	p.Circular(3, 0, nil)
	p.Circular(-2, -2, nil)

	assert.Equal(t, 0, p.LayerCount())
	assert.Equal(t, 0, p.Len())
}

func TestGenerators_AppendLayersOnly(t *testing.T) {
	p := New()
	p.AddStar(NewStar(0, 0, "Origin", 1))
	require.Equal(t, 1, p.LayerCount())

	p.Triangle(2, nil)
	p.Circular(1, 4, nil)

	assert.Equal(t, 1+2+1, p.LayerCount(), "generators append to existing layers")
	assert.Equal(t, 1, p.Len(), "generators leave the flat list alone")
	_, found := p.StarByName("Star_0")
	assert.False(t, found)
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		input   string
		want    Shape
		wantErr bool
	}{
		{"triangle", ShapeTriangle, false},
		{"Square", ShapeSquare, false},
		{" circle ", ShapeCircular, false},
		{"circular", ShapeCircular, false},
		{"hexagon", "", true},
	}

	for _, tt := range tests {
		got, err := ParseShape(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseShape_ErrorListsShapes(t *testing.T) {
	_, err := ParseShape("hexagon")
	require.Error(t, err)
	for _, sh := range Shapes {
		assert.Contains(t, err.Error(), string(sh))
	}
}

func TestGenerate(t *testing.T) {
	p := New()
	require.NoError(t, p.Generate(Spec{Shape: ShapeCircular, Size: 2, PerLayer: 3}))
	require.NoError(t, p.Generate(Spec{Shape: ShapeSquare, Size: 1}))
	assert.Equal(t, 3, p.LayerCount())

	err := p.Generate(Spec{Shape: "hexagon", Size: 2})
	assert.Error(t, err)
	assert.Equal(t, 3, p.LayerCount())
}
