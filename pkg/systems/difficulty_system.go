package systems

import (
	"log"

	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
)

// EnemySpawner creates enemies by kind name at a position in meters.
type EnemySpawner interface {
	CreateEnemy(kind string, x, y float64) (ecs.EntityID, error)
}

// DifficultySystem is the time-indexed difficulty ramp. A stage fires when
// the world timer equals its trigger second, at most once.
type DifficultySystem struct {
	stages    []config.DifficultyStage
	fired     []bool
	spawner   EnemySpawner
	decayRate int
	stage     int
}

// NewDifficultySystem creates the ramp with the base decay rate.
func NewDifficultySystem(stages []config.DifficultyStage, spawner EnemySpawner, baseDecayRate int) *DifficultySystem {
	return &DifficultySystem{
		stages:    stages,
		fired:     make([]bool, len(stages)),
		spawner:   spawner,
		decayRate: baseDecayRate,
	}
}

// OnSecond evaluates the stages for world timer t and returns the enemies
// spawned. Spawn failures are logged and skipped; the stage still counts.
func (s *DifficultySystem) OnSecond(t int) []ecs.EntityID {
	var spawned []ecs.EntityID
	for i, st := range s.stages {
		if st.At != t || s.fired[i] {
			continue
		}
		s.fired[i] = true
		s.stage++
		s.decayRate += st.DecayIncrease

		if st.Enemy != nil {
			id, err := s.spawner.CreateEnemy(st.Enemy.Kind, st.Enemy.X, st.Enemy.Y)
			if err != nil {
				log.Printf("[DifficultySystem] Stage at %ds: %v", t, err)
			} else {
				spawned = append(spawned, id)
			}
		}
		log.Printf("[DifficultySystem] Stage %d reached at %ds, decay rate %d", s.stage, t, s.decayRate)
	}
	return spawned
}

// DecayRate returns the health lost per second.
func (s *DifficultySystem) DecayRate() int {
	return s.decayRate
}

// Stage returns the number of stages fired so far.
func (s *DifficultySystem) Stage() int {
	return s.stage
}
