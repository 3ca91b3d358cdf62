package types

import "strings"

// EnemyKind identifies an enemy variant. All variants share one state machine
// and differ only in tuning.
type EnemyKind int

const (
	// EnemyUnknown is the zero value; it never names a real enemy.
	EnemyUnknown EnemyKind = iota
	EnemyBear
	EnemyChicken
)

// Enemy kind names used in configuration files and spawn requests.
const (
	EnemyNameBear    = "bear"
	EnemyNameChicken = "chicken"
)

// ParseEnemyKind converts a configuration name into an EnemyKind. The lookup is
// case-insensitive; unknown names return EnemyUnknown and false.
func ParseEnemyKind(name string) (EnemyKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EnemyNameBear:
		return EnemyBear, true
	case EnemyNameChicken:
		return EnemyChicken, true
	default:
		return EnemyUnknown, false
	}
}

func (k EnemyKind) String() string {
	switch k {
	case EnemyBear:
		return EnemyNameBear
	case EnemyChicken:
		return EnemyNameChicken
	default:
		return "unknown"
	}
}
