package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game (playing, game over). Only the active
// scene is updated and drawn.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene onto screen.
	Draw(screen *ebiten.Image)
}

// Closer is implemented by scenes that hold resources to release when they
// are replaced.
type Closer interface {
	Close()
}
