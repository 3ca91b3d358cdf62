package systems

import (
	"log"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
)

// MovementStateSystem derives the movement state of every dynamic entity
// from its velocity and keeps the state timer and facing used for animation.
type MovementStateSystem struct {
	em *ecs.EntityManager
}

// NewMovementStateSystem creates the system.
func NewMovementStateSystem(em *ecs.EntityManager) *MovementStateSystem {
	return &MovementStateSystem{em: em}
}

// Update refreshes the movement component of every entity that has a body.
func (s *MovementStateSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.BodyComponent, *components.MovementComponent](s.em) {
		body, err := bodyOf(s.em, id)
		if err != nil {
			log.Printf("[MovementStateSystem] Skipping: %v", err)
			continue
		}
		mc, _ := ecs.GetComponent[*components.MovementComponent](s.em, id)
		advanceMovement(mc, body.LinearVelocity(), deltaTime)
	}
}

// advanceMovement applies one tick of velocity v to mc.
func advanceMovement(mc *components.MovementComponent, v physics.Vec, deltaTime float64) {
	state := types.DeriveMovementState(v.X, v.Y)

	mc.PreviousState = mc.State
	if state == mc.State {
		mc.StateTimer += deltaTime
	} else {
		mc.State = state
		mc.StateTimer = 0
	}

	// Facing only changes while actually moving sideways.
	switch {
	case v.X < 0 && mc.RunningRight:
		mc.RunningRight = false
	case v.X > 0 && !mc.RunningRight:
		mc.RunningRight = true
	}
}
