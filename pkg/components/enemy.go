package components

import (
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
)

// EnemyComponent is the AI state of a bear, chicken or any other configured
// kind. Kinds differ only in Tuning.
type EnemyComponent struct {
	Kind           types.EnemyKind
	Name           string             // configuration name of the kind
	Tuning         config.EnemyConfig // per-kind constants
	MoveVelocity   physics.Vec        // impulse applied by the run behavior
	DecideTimer    float64            // seconds since the last decision
	DecideDuration float64            // fixed at spawn within [DecideMin, DecideMax]
}
