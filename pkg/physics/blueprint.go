package physics

import (
	"fmt"

	"github.com/gonewx/bobmelting/pkg/types"
)

// BodyType selects how the solver treats a body.
type BodyType int

const (
	// Static bodies never move; tiles, Bob and snowballs.
	Static BodyType = iota
	// Dynamic bodies are moved by gravity, impulses and contacts.
	Dynamic
)

func (t BodyType) String() string {
	if t == Dynamic {
		return "dynamic"
	}
	return "static"
}

// ShapeKind is the geometry of a body's single fixture.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape describes fixture geometry in meters. Box sizes are full extents.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
}

// Circle returns a circle shape of radius r meters.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// Box returns an axis-aligned box shape w by h meters, centered on the body.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, Width: w, Height: h}
}

// Validate rejects degenerate geometry.
func (s Shape) Validate() error {
	switch s.Kind {
	case ShapeCircle:
		if s.Radius <= 0 {
			return fmt.Errorf("%w: circle radius %.4f", ErrInvalidShape, s.Radius)
		}
	case ShapeBox:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: box %.4fx%.4f", ErrInvalidShape, s.Width, s.Height)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidShape, s.Kind)
	}
	return nil
}

// Blueprint is everything the world needs to realize a body.
type Blueprint struct {
	Position Vec
	Velocity Vec
	Type     BodyType
	Shape    Shape
	Filter   types.Filter
	// Friction is the coefficient a pair of bodies with equal friction
	// should see. Zero uses DefaultFriction.
	Friction float64
}

// DefaultFriction is the pair friction used when a blueprint leaves it unset.
const DefaultFriction = 0.2
