package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
)

// timerEpsilon absorbs the rounding of fixed-step accumulation, so that 240
// steps of 1/60 s count as 4 s.
const timerEpsilon = 1e-9

// PlayerSystem owns the player's sub-states: the invincibility window after
// an enemy hit and carrying a snowball. Every transition swaps the body's
// collision filter so the player is always in exactly one player filter.
type PlayerSystem struct {
	em  *ecs.EntityManager
	cfg config.PlayerConfig
}

// NewPlayerSystem creates the system.
//
// Parameters:
//   - em: entity manager holding the player
//   - cfg: impulses, invincibility duration and flicker tuning
func NewPlayerSystem(em *ecs.EntityManager, cfg config.PlayerConfig) *PlayerSystem {
	return &PlayerSystem{em: em, cfg: cfg}
}

func (s *PlayerSystem) player(id ecs.EntityID) (*components.PlayerComponent, *physics.Body, error) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	if !ok {
		return nil, nil, fmt.Errorf("entity %d is not a player", id)
	}
	body, err := bodyOf(s.em, id)
	if err != nil {
		return nil, nil, err
	}
	return pc, body, nil
}

// Update advances the invincibility window and the flicker of every player.
func (s *PlayerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.em) {
		pc, body, err := s.player(id)
		if err != nil {
			log.Printf("[PlayerSystem] Skipping: %v", err)
			continue
		}
		if !pc.Invincible {
			continue
		}

		pc.InvincibleTimer += deltaTime
		pc.FlickerTimer += deltaTime
		if pc.FlickerTimer >= s.cfg.FlickerInterval {
			pc.FlickerTimer = 0
			if pc.Alpha == 1 {
				pc.Alpha = s.cfg.FlickerAlpha
			} else {
				pc.Alpha = 1
			}
		}

		if pc.InvincibleTimer+timerEpsilon >= s.cfg.InvincibleDuration {
			pc.Invincible = false
			pc.InvincibleTimer = 0
			pc.FlickerTimer = 0
			pc.Alpha = 1
			body.SetFilter(types.PlayerNormalFilter)
			log.Printf("[PlayerSystem] Player %d is vulnerable again", id)
		}
	}
}

// OnEnemyHit starts (or restarts) the invincibility window. A carried
// snowball is dropped and lost.
func (s *PlayerSystem) OnEnemyHit(id ecs.EntityID) error {
	pc, body, err := s.player(id)
	if err != nil {
		return err
	}

	if pc.Carrying {
		pc.Carrying = false
		log.Printf("[PlayerSystem] Player %d dropped the snowball", id)
	}
	pc.Invincible = true
	pc.InvincibleTimer = 0
	pc.FlickerTimer = 0
	pc.Alpha = 1
	body.SetFilter(types.PlayerInvincibleFilter)
	return nil
}

// CollectItem puts the player into the carrying state.
func (s *PlayerSystem) CollectItem(id ecs.EntityID) error {
	pc, body, err := s.player(id)
	if err != nil {
		return err
	}
	pc.Carrying = true
	body.SetFilter(types.PlayerCarryingFilter)
	return nil
}

// DeliverItem ends the carrying state.
func (s *PlayerSystem) DeliverItem(id ecs.EntityID) error {
	pc, body, err := s.player(id)
	if err != nil {
		return err
	}
	pc.Carrying = false
	body.SetFilter(types.PlayerNormalFilter)
	return nil
}

// Jump applies the jump impulse unless the player is airborne.
//
// Returns:
//   - bool: whether the impulse was applied
//   - error: the entity is not a realized player
func (s *PlayerSystem) Jump(id ecs.EntityID) (bool, error) {
	pc, body, err := s.player(id)
	if err != nil {
		return false, err
	}

	v := body.LinearVelocity()
	if types.DeriveMovementState(v.X, v.Y).IsAirborne() {
		return false, nil
	}

	impulse := s.cfg.JumpImpulse
	if pc.Invincible {
		impulse = s.cfg.InvincibleJumpImpulse
	}
	body.ApplyLinearImpulse(physics.V(0, impulse), body.WorldCenter())
	return true, nil
}

// Move applies one run impulse in dir unless the player already runs faster
// than MaxRunVelocity that way.
func (s *PlayerSystem) Move(id ecs.EntityID, dir types.Direction) (bool, error) {
	pc, body, err := s.player(id)
	if err != nil {
		return false, err
	}

	vx := body.LinearVelocity().X
	if (dir == types.Right && vx > s.cfg.MaxRunVelocity) || (dir == types.Left && vx < -s.cfg.MaxRunVelocity) {
		return false, nil
	}

	impulse := s.cfg.RunImpulse
	if pc.Invincible {
		impulse = s.cfg.InvincibleRunImpulse
	}
	body.ApplyLinearImpulse(physics.V(dir.Sign()*impulse, 0), body.WorldCenter())
	return true, nil
}
