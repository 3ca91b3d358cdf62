package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layer indices of a level map. The numbering is fixed by the map format.
const (
	GroundLayer        = 5 // solid tiles
	SpawnLayer         = 6 // snowball spawn rectangles (origin is the spawn point)
	EnemyBoundaryLayer = 7 // invisible walls that turn enemies around
)

// LevelMap is a tile-free level description: named layers of rectangles in
// pixels, y up, origin at the bottom-left of the map.
//
// Config file: data/levels/*.yaml
type LevelMap struct {
	Name   string     `yaml:"name"`
	Width  float64    `yaml:"width"`  // pixels
	Height float64    `yaml:"height"` // pixels
	Layers []MapLayer `yaml:"layers"`
}

// MapLayer is one indexed layer of rectangles.
type MapLayer struct {
	Index   int       `yaml:"index"`
	Name    string    `yaml:"name"`
	Objects []MapRect `yaml:"objects"`
}

// MapRect is an axis-aligned rectangle whose (X, Y) is its bottom-left
// corner.
type MapRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Center returns the rectangle center in pixels.
func (r MapRect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// LoadLevelMap reads and validates a level map file.
//
// Parameters:
//   - path: YAML file path (e.g. "data/levels/snowfield.yaml")
//
// Returns:
//   - *LevelMap: the parsed map
//   - error: read, parse or validation failure
func LoadLevelMap(path string) (*LevelMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level map %s: %w", path, err)
	}
	level, err := LoadLevelMapFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return level, nil
}

// LoadLevelMapFromBytes parses and validates level map YAML.
func LoadLevelMapFromBytes(data []byte) (*LevelMap, error) {
	var level LevelMap
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level map: %w", err)
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level map: %w", err)
	}
	return &level, nil
}

// Validate checks map size, layer uniqueness and rectangle sizes. A map needs
// a ground layer and at least one snowball spawn point.
func (m *LevelMap) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map size must be > 0, got %.0fx%.0f", m.Width, m.Height)
	}

	seen := make(map[int]bool, len(m.Layers))
	for _, layer := range m.Layers {
		if seen[layer.Index] {
			return fmt.Errorf("duplicate layer index %d", layer.Index)
		}
		seen[layer.Index] = true

		if layer.Index != GroundLayer && layer.Index != EnemyBoundaryLayer {
			continue
		}
		for i, r := range layer.Objects {
			if r.Width <= 0 || r.Height <= 0 {
				return fmt.Errorf("layer %d object %d: size must be > 0, got %.0fx%.0f",
					layer.Index, i, r.Width, r.Height)
			}
		}
	}

	if len(m.Rects(GroundLayer)) == 0 {
		return fmt.Errorf("ground layer %d is missing or empty", GroundLayer)
	}
	if len(m.Rects(SpawnLayer)) == 0 {
		return fmt.Errorf("spawn layer %d is missing or empty", SpawnLayer)
	}
	return nil
}

// Layer returns the layer with the given index.
func (m *LevelMap) Layer(index int) (*MapLayer, bool) {
	for i := range m.Layers {
		if m.Layers[i].Index == index {
			return &m.Layers[i], true
		}
	}
	return nil, false
}

// Rects returns the rectangles of a layer, or nil when it does not exist.
func (m *LevelMap) Rects(index int) []MapRect {
	if layer, ok := m.Layer(index); ok {
		return layer.Objects
	}
	return nil
}
