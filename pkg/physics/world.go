package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var (
	// ErrWorldLocked is returned when the world is mutated from inside Step.
	ErrWorldLocked = errors.New("physics world is locked during step")
	// ErrInvalidShape is returned for degenerate fixture geometry.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrUnknownBody is returned when a body does not belong to the world.
	ErrUnknownBody = errors.New("body does not belong to this world")
)

// DefaultGravity is the gravity of a freshly created world, in m/s².
var DefaultGravity = Vec{X: 0, Y: -10}

// bodyCollisionType is shared by every fixture so that a single handler sees
// all pairs; filtering is left to the shape filters.
const bodyCollisionType cp.CollisionType = 1

// World owns a cp space and every body in it.
type World struct {
	space    *cp.Space
	bodies   map[*cp.Shape]*Body
	nextID   BodyID
	listener ContactListener
	stepping bool
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity Vec) *World {
	w := &World{
		space:  cp.NewSpace(),
		bodies: make(map[*cp.Shape]*Body),
		nextID: 1,
	}
	w.space.SetGravity(toCP(gravity))

	handler := w.space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)
	handler.BeginFunc = w.onBegin
	handler.PreSolveFunc = w.onPreSolve
	handler.PostSolveFunc = w.onPostSolve
	handler.SeparateFunc = w.onSeparate
	return w
}

// SetContactListener installs the receiver of contact events. A nil listener
// disables callbacks.
func (w *World) SetContactListener(l ContactListener) {
	w.listener = l
}

// Gravity returns the world gravity.
func (w *World) Gravity() Vec {
	return fromCP(w.space.Gravity())
}

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Locked reports whether Step is in progress.
func (w *World) Locked() bool {
	return w.stepping
}

// Step advances the simulation by a fixed timestep. Chipmunk runs a single
// iterative solver, so the velocity and position iteration budgets are
// summed into its iteration count.
func (w *World) Step(fixedDelta float64, velocityIterations, positionIterations int) {
	iterations := velocityIterations + positionIterations
	if iterations < 1 {
		iterations = 1
	}
	w.space.Iterations = uint(iterations)

	w.stepping = true
	defer func() { w.stepping = false }()
	w.space.Step(fixedDelta)
}

// CreateBody realizes a blueprint in the world.
func (w *World) CreateBody(bp Blueprint) (*Body, error) {
	if w.stepping {
		return nil, ErrWorldLocked
	}
	if err := bp.Shape.Validate(); err != nil {
		return nil, err
	}

	var cpBody *cp.Body
	switch bp.Type {
	case Static:
		cpBody = cp.NewStaticBody()
	case Dynamic:
		// Unit mass and infinite moment: bodies never rotate.
		cpBody = cp.NewBody(1, math.Inf(1))
	default:
		return nil, fmt.Errorf("unknown body type %d", bp.Type)
	}
	cpBody.SetPosition(toCP(bp.Position))
	w.space.AddBody(cpBody)

	var shape *cp.Shape
	switch bp.Shape.Kind {
	case ShapeCircle:
		shape = cp.NewCircle(cpBody, bp.Shape.Radius, cp.Vector{})
	case ShapeBox:
		shape = cp.NewBox(cpBody, bp.Shape.Width, bp.Shape.Height, 0)
	}

	friction := bp.Friction
	if friction <= 0 {
		friction = DefaultFriction
	}
	// cp multiplies the two coefficients of a pair.
	shape.SetFriction(math.Sqrt(friction))
	shape.SetElasticity(0)
	shape.SetCollisionType(bodyCollisionType)
	shape.SetFilter(toShapeFilter(bp.Filter))
	w.space.AddShape(shape)

	if bp.Type == Dynamic {
		cpBody.SetVelocityVector(toCP(bp.Velocity))
	}

	b := &Body{
		id:       w.nextID,
		world:    w,
		body:     cpBody,
		shape:    shape,
		geometry: bp.Shape,
		bodyType: bp.Type,
		filter:   bp.Filter,
	}
	w.nextID++
	w.bodies[shape] = b
	return b, nil
}

// DestroyBody removes a body and its fixture. Destroying an already destroyed
// body is a no-op.
func (w *World) DestroyBody(b *Body) error {
	if b == nil || b.destroyed {
		return nil
	}
	if b.world != w {
		return ErrUnknownBody
	}
	if w.stepping {
		return ErrWorldLocked
	}

	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.bodies, b.shape)
	b.destroyed = true
	return nil
}

// Close destroys every remaining body.
func (w *World) Close() {
	w.listener = nil
	for _, b := range w.bodies {
		w.space.RemoveShape(b.shape)
		w.space.RemoveBody(b.body)
		b.destroyed = true
	}
	w.bodies = make(map[*cp.Shape]*Body)
}

func (w *World) contactFor(arb *cp.Arbiter) (Contact, bool) {
	sa, sb := arb.Shapes()
	a, okA := w.bodies[sa]
	b, okB := w.bodies[sb]
	if !okA || !okB {
		return Contact{}, false
	}
	return Contact{A: a, B: b}, true
}

func (w *World) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	if w.listener != nil {
		if c, ok := w.contactFor(arb); ok {
			w.listener.BeginContact(c)
		}
	}
	return true
}

func (w *World) onPreSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	if w.listener != nil {
		if c, ok := w.contactFor(arb); ok {
			w.listener.PreSolve(c)
		}
	}
	return true
}

func (w *World) onPostSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	if w.listener != nil {
		if c, ok := w.contactFor(arb); ok {
			w.listener.PostSolve(c)
		}
	}
}

func (w *World) onSeparate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	if w.listener != nil {
		if c, ok := w.contactFor(arb); ok {
			w.listener.EndContact(c)
		}
	}
}
