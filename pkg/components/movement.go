package components

import "github.com/gonewx/bobmelting/pkg/types"

// MovementComponent caches the velocity-derived movement state of a dynamic
// body for animation timing.
type MovementComponent struct {
	State         types.MovementState // state derived this tick
	PreviousState types.MovementState // state derived last tick
	StateTimer    float64             // seconds spent in State
	RunningRight  bool                // facing; kept while standing
}
