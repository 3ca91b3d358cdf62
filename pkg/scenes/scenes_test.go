package scenes

import (
	"strings"
	"testing"

	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/game"
	"github.com/gonewx/bobmelting/pkg/types"
)

type recordingTarget struct {
	jumps int
	moves []types.Direction
}

func (r *recordingTarget) Jump() bool {
	r.jumps++
	return true
}

func (r *recordingTarget) Move(dir types.Direction) bool {
	r.moves = append(r.moves, dir)
	return true
}

func TestApplyIntents(t *testing.T) {
	tests := []struct {
		name      string
		in        Intents
		wantJumps int
		wantMoves []types.Direction
	}{
		{"idle", Intents{}, 0, nil},
		{"jump", Intents{Jump: true}, 1, nil},
		{"left", Intents{MoveLeft: true}, 0, []types.Direction{types.Left}},
		{"right while jumping", Intents{Jump: true, MoveRight: true}, 1, []types.Direction{types.Right}},
		{"both directions cancel", Intents{MoveLeft: true, MoveRight: true}, 0, nil},
		{"confirm is not a move", Intents{Confirm: true}, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &recordingTarget{}
			ApplyIntents(tt.in, target)

			if target.jumps != tt.wantJumps {
				t.Errorf("jumps = %d, want %d", target.jumps, tt.wantJumps)
			}
			if len(target.moves) != len(tt.wantMoves) {
				t.Fatalf("moves = %v, want %v", target.moves, tt.wantMoves)
			}
			for i := range tt.wantMoves {
				if target.moves[i] != tt.wantMoves[i] {
					t.Errorf("move %d = %v, want %v", i, target.moves[i], tt.wantMoves[i])
				}
			}
		})
	}
}

func testLevel() *config.LevelMap {
	return &config.LevelMap{
		Name:   "test",
		Width:  800,
		Height: 208,
		Layers: []config.MapLayer{
			{Index: config.GroundLayer, Objects: []config.MapRect{{X: 0, Y: 0, Width: 800, Height: 16}}},
			{Index: config.SpawnLayer, Objects: []config.MapRect{{X: 600, Y: 16}}},
		},
	}
}

func scripted(in Intents) InputReader {
	return func() Intents { return in }
}

func TestPlayScene_SwitchesToGameOver(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Goal.InitialHealth = 1
	cfg.InitialEnemies = []config.EnemySpawn{}

	sm := game.NewSceneManager()
	var sessions int
	sm.SetSceneFactory(func(string) (game.Scene, error) {
		s, err := game.NewSession(cfg, testLevel(), game.WithSeed(1))
		if err != nil {
			return nil, err
		}
		sessions++
		return NewPlayScene(s, sm, scripted(Intents{MoveRight: true}), false), nil
	})
	if !sm.LoadLevel("test") {
		t.Fatal("LoadLevel() failed")
	}

	for i := 0; i < 61; i++ {
		sm.Update(1.0 / 60)
	}
	over, ok := sm.CurrentScene().(*GameOverScene)
	if !ok {
		t.Fatalf("current scene = %T, want *GameOverScene", sm.CurrentScene())
	}
	if over.survived != 1 {
		t.Errorf("survived = %d, want 1", over.survived)
	}
	if !strings.Contains(over.Lines()[1], "lasted 1 seconds") {
		t.Errorf("Lines() = %q", over.Lines())
	}

	// Without confirm the scene stays.
	sm.Update(1.0 / 60)
	if sm.CurrentScene() != over {
		t.Fatal("game over scene left without confirm")
	}

	over.readInput = scripted(Intents{Confirm: true})
	sm.Update(1.0 / 60)
	if _, ok := sm.CurrentScene().(*PlayScene); !ok {
		t.Errorf("current scene = %T after confirm, want *PlayScene", sm.CurrentScene())
	}
	if sessions != 2 {
		t.Errorf("built %d sessions, want 2", sessions)
	}
}

func TestPlayScene_CameraFollowsPlayer(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.InitialEnemies = []config.EnemySpawn{}
	cfg.Player.Spawn = config.Vec2{X: 700, Y: 40}

	s, err := game.NewSession(cfg, testLevel(), game.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	scene := NewPlayScene(s, game.NewSceneManager(), scripted(Intents{}), false)
	defer scene.Close()

	scene.Update(1.0 / 60)
	if scene.cameraX != 400 {
		t.Errorf("cameraX = %v, want 400 (clamped to the level edge)", scene.cameraX)
	}
}
