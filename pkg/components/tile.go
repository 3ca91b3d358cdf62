package components

import "github.com/gonewx/bobmelting/pkg/config"

// TileKind distinguishes solid ground from enemy boundaries.
type TileKind int

const (
	TileGround TileKind = iota
	TileEnemyBoundary
)

// TileComponent is a static map rectangle, in pixels.
type TileComponent struct {
	Kind TileKind
	Rect config.MapRect
}
