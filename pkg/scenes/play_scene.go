package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/game"
	"github.com/gonewx/bobmelting/pkg/types"
	"github.com/gonewx/bobmelting/pkg/utils"
)

var (
	skyColor        = color.RGBA{R: 164, G: 196, B: 232, A: 255}
	groundColor     = color.RGBA{R: 240, G: 244, B: 250, A: 255}
	boundaryColor   = color.NRGBA{R: 255, G: 80, B: 80, A: 96}
	bobColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	snowballColor   = color.RGBA{R: 210, G: 230, B: 255, A: 255}
	playerColor     = color.NRGBA{R: 60, G: 90, B: 200, A: 255}
	carryMarkColor  = color.RGBA{R: 210, G: 230, B: 255, A: 255}
	bearColor       = color.RGBA{R: 120, G: 72, B: 40, A: 255}
	chickenColor    = color.RGBA{R: 240, G: 210, B: 60, A: 255}
	enemyColor      = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	hudShadowColor  = color.RGBA{A: 128}
	screenWidthF64  = float64(config.ScreenWidth)
	screenHeightF64 = float64(config.ScreenHeight)
)

// PlayScene runs one session and draws it. When Bob melts it hands over to
// the game-over scene.
type PlayScene struct {
	session      *game.Session
	sceneManager *game.SceneManager
	readInput    InputReader
	showBounds   bool
	cameraX      float64
}

// NewPlayScene wraps a running session.
//
// Parameters:
//   - session: the session to drive; the scene closes it when replaced
//   - sm: scene manager used to switch to the game-over scene
//   - readInput: input source, usually ReadIntents
//   - showBounds: draw the invisible enemy boundaries
func NewPlayScene(session *game.Session, sm *game.SceneManager, readInput InputReader, showBounds bool) *PlayScene {
	return &PlayScene{
		session:      session,
		sceneManager: sm,
		readInput:    readInput,
		showBounds:   showBounds,
	}
}

// Update applies input, advances the session and follows the player.
func (s *PlayScene) Update(deltaTime float64) {
	ApplyIntents(s.readInput(), s.session)
	s.session.Update(deltaTime)

	snap := s.session.Snapshot()
	s.cameraX = utils.CameraFollow(snap.Player.Position.X, screenWidthF64, snap.LevelWidth)

	if snap.GameOver {
		log.Printf("[PlayScene] Session %s over after %ds", snap.SessionID, snap.WorldTimer)
		s.sceneManager.SwitchTo(NewGameOverScene(s.sceneManager, s.readInput, snap.WorldTimer))
	}
}

// Close releases the session.
func (s *PlayScene) Close() {
	s.session.Close()
}

// Draw renders the level, every entity and the HUD.
func (s *PlayScene) Draw(screen *ebiten.Image) {
	snap := s.session.Snapshot()
	screen.Fill(skyColor)

	for _, tile := range snap.Tiles {
		var clr color.Color = groundColor
		if tile.Kind == components.TileEnemyBoundary {
			if !s.showBounds {
				continue
			}
			clr = boundaryColor
		}
		// Top-left corner in screen space.
		x, y := utils.WorldToScreen(tile.Rect.X, tile.Rect.Y+tile.Rect.Height, s.cameraX, screenHeightF64)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(tile.Rect.Width), float32(tile.Rect.Height), clr, false)
	}

	for _, c := range snap.Collectibles {
		x, y := utils.WorldToScreen(c.Position.X-c.Size/2, c.Position.Y+c.Size/2, s.cameraX, screenHeightF64)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(c.Size), float32(c.Size), snowballColor, false)
	}

	s.drawCircle(screen, snap.Goal, bobColor)
	for _, e := range snap.Enemies {
		s.drawCircle(screen, e, colorOfEnemy(e.Name))
	}
	s.drawPlayer(screen, snap.Player)

	s.drawHUD(screen, snap)
}

func (s *PlayScene) drawCircle(screen *ebiten.Image, e game.EntitySnapshot, clr color.Color) {
	x, y := utils.WorldToScreen(e.Position.X, e.Position.Y, s.cameraX, screenHeightF64)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(e.Radius), clr, true)
}

func (s *PlayScene) drawPlayer(screen *ebiten.Image, p game.EntitySnapshot) {
	clr := playerColor
	clr.A = uint8(255 * p.Alpha)
	s.drawCircle(screen, p, clr)

	// Facing marker, and the carried snowball above the head.
	x, y := utils.WorldToScreen(p.Position.X, p.Position.Y, s.cameraX, screenHeightF64)
	eye := float32(p.Radius / 2)
	if !p.RunningRight {
		eye = -eye
	}
	vector.DrawFilledCircle(screen, float32(x)+eye, float32(y)-2, 1.5, color.White, false)
	if p.Carrying {
		vector.DrawFilledRect(screen, float32(x)-4, float32(y-p.Radius)-9, 8, 8, carryMarkColor, false)
	}
}

func (s *PlayScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), 34, hudShadowColor, false)
	ebitenutil.DebugPrintAt(screen, "TIME ELAPSED", 8, 2)
	ebitenutil.DebugPrintAt(screen, utils.FormatToDigits(3, snap.WorldTimer), 8, 16)

	health := max(snap.Health, 0)
	ebitenutil.DebugPrintAt(screen, "HEALTH", config.ScreenWidth-56, 2)
	ebitenutil.DebugPrintAt(screen, utils.FormatToDigits(2, health), config.ScreenWidth-56, 16)

	if s.showBounds {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("decay %d/s  stage %d  enemies %d", snap.DecayRate, snap.Stage, len(snap.Enemies)),
			120, 16)
	}
}

func colorOfEnemy(name string) color.Color {
	kind, _ := types.ParseEnemyKind(name)
	switch kind {
	case types.EnemyBear:
		return bearColor
	case types.EnemyChicken:
		return chickenColor
	}
	return enemyColor
}
