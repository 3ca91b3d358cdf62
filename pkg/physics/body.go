package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/gonewx/bobmelting/pkg/types"
)

// BodyID identifies a body for the lifetime of its world. IDs are never
// reused.
type BodyID uint64

// Body is a handle to a rigid body with exactly one fixture.
type Body struct {
	id        BodyID
	world     *World
	body      *cp.Body
	shape     *cp.Shape
	geometry  Shape
	bodyType  BodyType
	filter    types.Filter
	destroyed bool
}

func (b *Body) ID() BodyID {
	return b.id
}

func (b *Body) Type() BodyType {
	return b.bodyType
}

// Shape returns the fixture geometry the body was created with.
func (b *Body) Shape() Shape {
	return b.geometry
}

// Destroyed reports whether the body has been removed from its world.
func (b *Body) Destroyed() bool {
	return b.destroyed
}

// Position returns the body origin in meters.
func (b *Body) Position() Vec {
	return fromCP(b.body.Position())
}

// WorldCenter returns the center of mass in world coordinates.
func (b *Body) WorldCenter() Vec {
	return fromCP(b.body.LocalToWorld(b.body.CenterOfGravity()))
}

// LinearVelocity returns the velocity in meters per second.
func (b *Body) LinearVelocity() Vec {
	return fromCP(b.body.Velocity())
}

// SetLinearVelocity overrides the body's velocity. Static bodies ignore it.
func (b *Body) SetLinearVelocity(v Vec) {
	if b.bodyType != Dynamic {
		return
	}
	b.body.SetVelocityVector(toCP(v))
}

// ApplyLinearImpulse applies impulse at a world point. Bodies have unit mass,
// so the impulse equals the velocity change.
func (b *Body) ApplyLinearImpulse(impulse, point Vec) {
	if b.bodyType != Dynamic {
		return
	}
	b.body.ApplyImpulseAtWorldPoint(toCP(impulse), toCP(point))
}

// Filter returns the category/mask the fixture currently uses.
func (b *Body) Filter() types.Filter {
	return b.filter
}

// SetFilter swaps the fixture's category and mask. It is safe to call from
// inside contact callbacks; the new filter applies from the next collision
// pass.
func (b *Body) SetFilter(f types.Filter) {
	b.filter = f
	b.shape.SetFilter(toShapeFilter(f))
}

func toCP(v Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) Vec {
	return Vec{X: v.X, Y: v.Y}
}

func toShapeFilter(f types.Filter) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(f.Category), uint(f.Mask))
}
