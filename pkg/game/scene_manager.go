package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory builds the play scene of a level. It lets the game-over scene
// start a new run without importing the scenes package.
type SceneFactory func(levelName string) (Scene, error)

// SceneManager controls which scene is active. Only one scene's Update and
// Draw run per frame.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	levelName    string
}

// NewSceneManager returns a manager with no active scene; use SwitchTo or
// LoadLevel to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory sets the factory used by LoadLevel and Restart.
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo makes scene active. The previous scene is closed when it
// implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if prev, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		prev.Close()
	}
	sm.currentScene = scene
}

// CurrentScene returns the active scene, or nil.
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel builds a fresh play scene for levelName and switches to it. On
// failure the current scene stays active.
func (sm *SceneManager) LoadLevel(levelName string) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] No scene factory set")
		return false
	}

	scene, err := sm.sceneFactory(levelName)
	if err != nil {
		log.Printf("[SceneManager] Failed to load level %q: %v", levelName, err)
		return false
	}
	sm.levelName = levelName
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Switched to level %q", levelName)
	return true
}

// Restart reloads the last level with a new session.
func (sm *SceneManager) Restart() bool {
	return sm.LoadLevel(sm.levelName)
}

// Update updates the active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
