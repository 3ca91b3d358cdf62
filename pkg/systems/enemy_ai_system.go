package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/utils"
)

// EnemyAISystem drives every enemy kind with the same behavior: run with
// MoveVelocity, and every DecideDuration seconds either jump or stop.
type EnemyAISystem struct {
	em  *ecs.EntityManager
	rng utils.RandomSource
}

// NewEnemyAISystem creates the system.
func NewEnemyAISystem(em *ecs.EntityManager, rng utils.RandomSource) *EnemyAISystem {
	return &EnemyAISystem{em: em, rng: rng}
}

// Update runs one decision/run step for every enemy.
func (s *EnemyAISystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.BodyComponent](s.em) {
		body, err := bodyOf(s.em, id)
		if err != nil {
			log.Printf("[EnemyAISystem] Skipping: %v", err)
			continue
		}
		ec, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)

		ec.DecideTimer += deltaTime
		if ec.DecideTimer >= ec.DecideDuration {
			s.decide(ec, body)
			ec.DecideTimer = 0
		}

		if math.Abs(body.LinearVelocity().X) <= ec.Tuning.MaxRunVelocity {
			body.ApplyLinearImpulse(ec.MoveVelocity, body.WorldCenter())
		}
	}
}

func (s *EnemyAISystem) decide(ec *components.EnemyComponent, body *physics.Body) {
	if s.rng.Chance(ec.Tuning.ChanceToJump) {
		body.ApplyLinearImpulse(physics.V(0, ec.Tuning.JumpVelocity), body.WorldCenter())
		ec.MoveVelocity = physics.V(ec.Tuning.DefaultRunVelocity, 0)
		return
	}
	ec.MoveVelocity = physics.Vec{}
}

// ReverseHorizontal turns an enemy around with its kind's bounce chance.
//
// Returns:
//   - bool: whether the enemy turned
//   - error: the entity is not an enemy
func (s *EnemyAISystem) ReverseHorizontal(id ecs.EntityID) (bool, error) {
	ec, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id)
	if !ok {
		return false, fmt.Errorf("entity %d is not an enemy", id)
	}
	if !s.rng.Chance(ec.Tuning.BounceChance) {
		return false, nil
	}
	ec.MoveVelocity.X = -ec.MoveVelocity.X
	return true, nil
}
