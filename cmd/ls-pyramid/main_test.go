package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-pyramid/internal/pyramid"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFixture generates a consistent triangle pyramid file.
func writeFixture(t *testing.T, base int) string {
	t.Helper()
	p := pyramid.New()
	p.Triangle(base, nil)
	p.Flatten()
	path := filepath.Join(t.TempDir(), "triangle.json")
	require.NoError(t, p.ExportFile(path))
	return path
}

func TestDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "star_pyramid.json")
	t.Setenv("LSPYRAMID_EXPORT_PATH", path)

	out, _, err := run(t)
	require.NoError(t, err)

	for _, want := range []string{
		"Creating Star List Shape Pyramid Demo",
		"1. Creating Triangle Pyramid...",
		"2. Creating Square Pyramid...",
		"3. Creating Circular Pyramid...",
		"4. Triangle Pyramid Statistics:",
		"No stars in pyramid",
		"5. Exporting to JSON...",
		"Exported to '" + path + "'",
		"Layer 4:",
	} {
		assert.Contains(t, out, want)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc pyramid.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Layers, 4)
	assert.Equal(t, 0, doc.TotalStars, "generators leave the flat list empty")
}

func TestDemoSubcommand(t *testing.T) {
	t.Setenv("LSPYRAMID_EXPORT_PATH", filepath.Join(t.TempDir(), "out.json"))
	out, _, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to")
}

func TestDemo_ExportFailure(t *testing.T) {
	t.Setenv("LSPYRAMID_EXPORT_PATH", filepath.Join(t.TempDir(), "no-such-dir", "out.json"))
	_, _, err := run(t, "demo")
	assert.Error(t, err)
}

func TestGenerate_Stdout(t *testing.T) {
	out, _, err := run(t, "generate", "circular", "2", "5")
	require.NoError(t, err)

	var doc pyramid.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Layers, 2)
	assert.Len(t, doc.Layers[1], 5)
	assert.Equal(t, 10, doc.TotalStars)
}

func TestGenerate_FileWithCatalogNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	_, _, err := run(t, "generate", "square", "2", "--catalog-names", "-o", path)
	require.NoError(t, err)

	p := pyramid.New()
	require.NoError(t, p.ImportFile(path))
	assert.Equal(t, 5, p.Len())
	s, ok := p.StarByName("Sirius")
	require.True(t, ok)
	assert.Equal(t, 1.0, s.Magnitude)
}

func TestGenerate_BadArgs(t *testing.T) {
	tests := [][]string{
		{"generate", "hexagon", "3"},
		{"generate", "triangle", "three"},
		{"generate", "triangle", "3", "4"},
		{"generate", "circular", "3", "x"},
		{"generate", "triangle"},
	}
	for _, args := range tests {
		_, _, err := run(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestRender(t *testing.T) {
	path := writeFixture(t, 2)
	out, _, err := run(t, "render", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Star Pyramid (ASCII Representation):\n"))
	assert.Contains(t, out, "Layer 2:")
}

func TestRender_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"total_stars": 1}`), 0o644))

	_, _, err := run(t, "render", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pyramid.ErrMalformed))
}

func TestStats(t *testing.T) {
	path := writeFixture(t, 3)

	out, _, err := run(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "total_stars: 6")

	out, _, err = run(t, "stats", path, "--json")
	require.NoError(t, err)
	var st pyramid.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 6, st.TotalStars)
	assert.Equal(t, 3, st.TotalLayers)
	assert.Equal(t, 1.0, st.Magnitude.Min)
}

func TestStats_EmptyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, pyramid.New().ExportFile(path))

	out, _, err := run(t, "stats", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"error": "No stars in pyramid"`)
}

func TestLayer(t *testing.T) {
	path := writeFixture(t, 3)

	out, _, err := run(t, "layer", path, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Layer 2:")
	assert.Contains(t, out, "Star_1")
	assert.Contains(t, out, "Star_2")

	out, _, err = run(t, "layer", path, "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Layer 9 has no stars (pyramid has 3 layers)")
}

func TestFind(t *testing.T) {
	path := writeFixture(t, 2)

	out, _, err := run(t, "find", path, "Star_2")
	require.NoError(t, err)
	assert.Contains(t, out, "Star_2 (")
	assert.Contains(t, out, "color:white")

	_, _, err = run(t, "find", path, "Polaris")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotFound))
}

func TestFilter(t *testing.T) {
	path := writeFixture(t, 4) // 10 stars

	out, _, err := run(t, "filter", path, "--min", "1", "--max", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Star_0 (")
	assert.Contains(t, out, "Star_5 (")
	assert.Contains(t, out, "2 of 10 stars")

	_, _, err = run(t, "filter", path, "--min", "3", "--max", "1")
	assert.Error(t, err)
}

func TestSky(t *testing.T) {
	path := writeFixture(t, 3)
	out, _, err := run(t, "sky", path)
	require.NoError(t, err)
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "6 stars in 3 layers")
}

func TestMissingFile(t *testing.T) {
	_, _, err := run(t, "render", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLogLevelFlag(t *testing.T) {
	path := writeFixture(t, 2)
	_, stderr, err := run(t, "--log-level", "debug", "render", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "imported")
}

func TestBadConfig(t *testing.T) {
	t.Setenv("LSPYRAMID_RENDER_COLOR", "rainbow")
	_, _, err := run(t, "render", "whatever.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render.color")
}
