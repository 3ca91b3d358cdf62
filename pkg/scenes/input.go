package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/bobmelting/pkg/types"
)

// Intents is one frame of player input.
type Intents struct {
	Jump      bool // edge-triggered
	MoveLeft  bool // level-triggered
	MoveRight bool // level-triggered
	Confirm   bool // edge-triggered: Enter, Space or a left click
}

// InputReader returns the intents of the current frame.
type InputReader func() Intents

// ReadIntents polls ebiten's keyboard and mouse state.
func ReadIntents() Intents {
	return Intents{
		Jump: inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// IntentTarget receives player intents.
type IntentTarget interface {
	Jump() bool
	Move(dir types.Direction) bool
}

// ApplyIntents forwards in to target. Holding both directions moves nowhere.
func ApplyIntents(in Intents, target IntentTarget) {
	if in.Jump {
		target.Jump()
	}
	switch {
	case in.MoveLeft && !in.MoveRight:
		target.Move(types.Left)
	case in.MoveRight && !in.MoveLeft:
		target.Move(types.Right)
	}
}
