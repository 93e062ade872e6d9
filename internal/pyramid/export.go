package pyramid

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformed reports an import document that is not valid pyramid JSON.
var ErrMalformed = errors.New("malformed pyramid document")

// Document is the JSON-serializable form of a pyramid.
type Document struct {
	Layers     [][]StarRecord `json:"pyramid_layers"`
	TotalStars int            `json:"total_stars"`
}

// StarRecord is a JSON-friendly star representation.
type StarRecord struct {
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Magnitude float64 `json:"magnitude"`
	Color     string  `json:"color"`
}

// Export converts the layer structure to a document. TotalStars is the
// size of the flat list, which may differ from the layer contents after a
// generator call.
func (p *Pyramid) Export() Document {
	doc := Document{
		Layers:     make([][]StarRecord, 0, len(p.layers)),
		TotalStars: len(p.stars),
	}
	for _, layer := range p.layers {
		records := make([]StarRecord, 0, len(layer))
		for _, s := range layer {
			records = append(records, StarRecord{
				Name:      s.Name,
				X:         s.X,
				Y:         s.Y,
				Magnitude: s.Magnitude,
				Color:     s.Color,
			})
		}
		doc.Layers = append(doc.Layers, records)
	}
	return doc
}

// WriteJSON writes the document as indented JSON to the given writer.
func (d Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// ExportFile writes the pyramid to path as JSON.
func (p *Pyramid) ExportFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	if err := p.Export().WriteJSON(f); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ImportFile replaces the pyramid contents with the document at path.
func (p *Pyramid) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	if err := p.ReadJSON(f); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

// ReadJSON decodes a document from r and replaces the pyramid contents with
// it. Every star is appended to both the flat list and its layer, so the two
// structures agree afterwards.
//
// Keys must match exactly. The whole document is validated before anything
// is changed; on error the pyramid keeps its previous contents.
func (p *Pyramid) ReadJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	var doc map[string]json.RawMessage
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: extra data after document", ErrMalformed)
	}

	rawLayers, ok := doc["pyramid_layers"]
	if !ok {
		return fmt.Errorf("%w: missing pyramid_layers", ErrMalformed)
	}
	var layerDocs [][]map[string]json.RawMessage
	if err := json.Unmarshal(rawLayers, &layerDocs); err != nil {
		return fmt.Errorf("%w: pyramid_layers: %v", ErrMalformed, err)
	}
	if layerDocs == nil {
		return fmt.Errorf("%w: pyramid_layers is null", ErrMalformed)
	}

	layers := make([][]Star, 0, len(layerDocs))
	var stars []Star
	for li, layerDoc := range layerDocs {
		if layerDoc == nil {
			return fmt.Errorf("%w: layer %d is null", ErrMalformed, li)
		}
		layer := make([]Star, 0, len(layerDoc))
		for si, fields := range layerDoc {
			s, err := decodeStar(fields)
			if err != nil {
				return fmt.Errorf("%w: layer %d star %d: %v", ErrMalformed, li, si, err)
			}
			stars = append(stars, s)
			layer = append(layer, s)
		}
		layers = append(layers, layer)
	}

	p.stars = stars
	p.layers = layers
	return nil
}

// decodeStar builds a star from its JSON fields. name, x, y and magnitude
// are required and non-null; a missing or null color becomes DefaultColor.
func decodeStar(fields map[string]json.RawMessage) (Star, error) {
	if fields == nil {
		return Star{}, errors.New("star is null")
	}

	var s Star
	if err := requiredField(fields, "name", &s.Name); err != nil {
		return Star{}, err
	}
	if err := requiredField(fields, "x", &s.X); err != nil {
		return Star{}, err
	}
	if err := requiredField(fields, "y", &s.Y); err != nil {
		return Star{}, err
	}
	if err := requiredField(fields, "magnitude", &s.Magnitude); err != nil {
		return Star{}, err
	}

	s.Color = DefaultColor
	if raw, ok := fields["color"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &s.Color); err != nil {
			return Star{}, fmt.Errorf("color: %v", err)
		}
	}
	return s, nil
}

func requiredField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("missing %s", key)
	}
	if isNull(raw) {
		return fmt.Errorf("null %s", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
