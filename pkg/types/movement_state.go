package types

// MovementState is the animation-facing movement state of a dynamic body.
// It is always derived from velocity and never authoritative.
type MovementState int

const (
	StateStanding MovementState = iota
	StateRunning
	StateJumping
	StateFalling
)

func (s MovementState) String() string {
	switch s {
	case StateStanding:
		return "standing"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// IsAirborne reports whether the state is Jumping or Falling.
func (s MovementState) IsAirborne() bool {
	return s == StateJumping || s == StateFalling
}

// DeriveMovementState maps a linear velocity to a movement state. Vertical
// motion wins over horizontal motion.
func DeriveMovementState(vx, vy float64) MovementState {
	switch {
	case vy > 0:
		return StateJumping
	case vy < 0:
		return StateFalling
	case vx != 0:
		return StateRunning
	default:
		return StateStanding
	}
}

// Direction is a horizontal move intent.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Sign returns -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}
