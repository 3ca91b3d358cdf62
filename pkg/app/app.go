// Package app wraps the game in an ebiten.Game so the desktop entry point
// stays small.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/embedded"
	"github.com/gonewx/bobmelting/pkg/game"
	"github.com/gonewx/bobmelting/pkg/scenes"
)

// Embedded defaults, read through pkg/embedded.
const (
	DefaultConfigPath = "data/game.yaml"
	DefaultLevelPath  = "data/levels/snowfield.yaml"
)

// Config holds the launch options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath is a game config file on disk; empty uses the embedded one.
	ConfigPath string
	// LevelPath is a level map file on disk; empty uses the embedded one.
	LevelPath string
	// Seed fixes the random source of the first session; 0 picks one from
	// the clock. Restarts always draw a new seed.
	Seed int64
	// ShowBounds draws the enemy boundaries and a debug line.
	ShowBounds bool
}

// App implements ebiten.Game on top of a scene manager.
type App struct {
	sceneManager             *game.SceneManager
	gameConfig               *config.GameConfig
	level                    *config.LevelMap
	verbose                  bool
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp loads config and level and starts the first session.
//
// embedded.Init must be called first when either path is empty.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, level, err := LoadResources(cfg.ConfigPath, cfg.LevelPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		gameConfig:   gameConfig,
		level:        level,
		verbose:      cfg.Verbose,
	}

	seed := cfg.Seed
	a.sceneManager.SetSceneFactory(func(levelName string) (game.Scene, error) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		session, err := game.NewSession(a.gameConfig, a.level, game.WithSeed(seed))
		seed = 0
		if err != nil {
			return nil, err
		}
		return scenes.NewPlayScene(session, a.sceneManager, scenes.ReadIntents, cfg.ShowBounds), nil
	})

	if !a.sceneManager.LoadLevel(level.Name) {
		return nil, fmt.Errorf("failed to start level %q", level.Name)
	}
	log.Printf("[App] Started level %q", level.Name)
	return a, nil
}

// LoadResources reads the game config and the level map, from disk when a
// path is given and from the embedded data otherwise.
func LoadResources(configPath, levelPath string) (*config.GameConfig, *config.LevelMap, error) {
	var (
		gameConfig *config.GameConfig
		level      *config.LevelMap
		err        error
	)

	if configPath != "" {
		gameConfig, err = config.LoadGameConfig(configPath)
	} else {
		gameConfig, err = loadEmbedded(DefaultConfigPath, config.LoadGameConfigFromBytes)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("game config: %w", err)
	}
	log.Printf("[Config] Loaded game config (%d enemy kinds, %d stages)",
		len(gameConfig.Enemies), len(gameConfig.Difficulty.Stages))

	if levelPath != "" {
		level, err = config.LoadLevelMap(levelPath)
	} else {
		level, err = loadEmbedded(DefaultLevelPath, config.LoadLevelMapFromBytes)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("level map: %w", err)
	}
	log.Printf("[Config] Loaded level %q (%.0fx%.0f)", level.Name, level.Width, level.Height)

	return gameConfig, level, nil
}

func loadEmbedded[T any](path string, parse func([]byte) (T, error)) (T, error) {
	var zero T
	data, err := embedded.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read embedded %s: %w", path, err)
	}
	v, err := parse(data)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Update runs one fixed step of the active scene.
func (a *App) Update() error {
	// Resizing right after leaving fullscreen is ignored by some window
	// managers, so wait a few frames.
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.gameConfig.Physics.TimeStep)
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen letterboxes the scaled screen on black.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// SceneManager returns the scene manager.
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose reports whether logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
