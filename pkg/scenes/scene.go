// Package scenes renders a session with debug primitives and turns keyboard
// and mouse input into player intents.
package scenes

import (
	"github.com/gonewx/bobmelting/pkg/game"
)

// Scene is an alias of game.Scene so callers only import this package.
type Scene = game.Scene
