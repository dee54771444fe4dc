// Package palette defines the ordered set of tile types available to the
// editor and loads it from a YAML manifest.
package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tilepaint/internal/grid"
)

// Tile is one palette entry. Data references the tile's image (a file
// under the assets directory); nil means no image is associated and the
// renderer falls back to a placeholder.
type Tile struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Data *string `json:"data" yaml:"image,omitempty"`
}

// Palette is an ordered sequence of tiles with unique ids.
type Palette []Tile

// Has reports whether id names a palette entry or the Empty sentinel.
func (p Palette) Has(id grid.TileID) bool {
	if id == grid.Empty {
		return true
	}
	for _, t := range p {
		if t.ID == string(id) {
			return true
		}
	}
	return false
}

// Find returns the entry with the given id.
func (p Palette) Find(id grid.TileID) (Tile, bool) {
	for _, t := range p {
		if t.ID == string(id) {
			return t, true
		}
	}
	return Tile{}, false
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	for i, t := range p {
		out[i] = t
		if t.Data != nil {
			d := *t.Data
			out[i].Data = &d
		}
	}
	return out
}

// Validate checks id uniqueness and rejects use of the reserved Empty id.
func (p Palette) Validate() error {
	seen := make(map[string]bool, len(p))
	for _, t := range p {
		if t.ID == "" {
			return fmt.Errorf("palette entry %q has no id", t.Name)
		}
		if t.ID == string(grid.Empty) {
			return fmt.Errorf("palette entry %q uses the reserved id %q", t.Name, grid.Empty)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate palette id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

type manifest struct {
	Tiles []Tile `yaml:"tiles"`
}

// LoadManifest reads a palette from a YAML manifest file.
func LoadManifest(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// ParseManifest decodes a YAML palette manifest and validates it.
func ParseManifest(data []byte) (Palette, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse palette manifest: %w", err)
	}
	p := Palette(m.Tiles)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
