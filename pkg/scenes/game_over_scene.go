package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/game"
)

// Width of one debug-font glyph, used to center lines.
const glyphWidth = 6

var gameOverColor = color.RGBA{R: 24, G: 32, B: 48, A: 255}

// GameOverScene reports how long Bob lasted and starts a new run on confirm.
type GameOverScene struct {
	sceneManager *game.SceneManager
	readInput    InputReader
	survived     int
}

// NewGameOverScene creates the scene for a run that lasted survived seconds.
func NewGameOverScene(sm *game.SceneManager, readInput InputReader, survived int) *GameOverScene {
	return &GameOverScene{sceneManager: sm, readInput: readInput, survived: survived}
}

// Lines returns the text shown on screen.
func (s *GameOverScene) Lines() []string {
	return []string{
		"Bob's a puddle now!",
		fmt.Sprintf("Bob lasted %d seconds before melting away", s.survived),
		"",
		"Click to Play Again",
	}
}

// Update restarts the level on confirm.
func (s *GameOverScene) Update(float64) {
	if s.readInput().Confirm {
		log.Printf("[GameOverScene] Restarting")
		s.sceneManager.Restart()
	}
}

// Draw renders the centered text.
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(gameOverColor)

	lines := s.Lines()
	top := config.ScreenHeight/2 - len(lines)*16/2
	for i, line := range lines {
		x := (config.ScreenWidth - len(line)*glyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*16)
	}
}
