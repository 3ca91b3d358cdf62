package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bear, ok := cfg.Enemy("bear")
	if !ok {
		t.Fatal("bear tuning missing")
	}
	if bear.DecideMin != 1 || bear.DecideMax != 5 || bear.ChanceToJump != 0.5 {
		t.Errorf("unexpected bear tuning: %+v", bear)
	}
	chicken, _ := cfg.Enemy("chicken")
	if chicken.DecideMin != 2 || chicken.DecideMax != 10 || chicken.MaxRunVelocity != 1 {
		t.Errorf("unexpected chicken tuning: %+v", chicken)
	}
	if cfg.Goal.BaseDecayRate != 2 || cfg.Goal.DeliveryBonus != 10 || cfg.Goal.MaxHealth != 100 {
		t.Errorf("unexpected goal tuning: %+v", cfg.Goal)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial config keeps defaults",
			yamlContent: `
goal:
  baseDecayRate: 3
collectibles:
  maxCount: 2
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Goal.BaseDecayRate != 3 {
					t.Errorf("expected decay 3, got %d", cfg.Goal.BaseDecayRate)
				}
				if cfg.Goal.MaxHealth != 100 || cfg.Goal.InitialHealth != 100 {
					t.Errorf("health defaults not applied: %+v", cfg.Goal)
				}
				if cfg.Collectibles.MaxCount != 2 || cfg.Collectibles.SpawnInterval != 3 {
					t.Errorf("collectible config mismatch: %+v", cfg.Collectibles)
				}
				if cfg.Physics.VelocityIterations != 6 || cfg.Physics.PositionIterations != 2 {
					t.Errorf("physics defaults not applied: %+v", cfg.Physics)
				}
				if len(cfg.Difficulty.Stages) != 4 {
					t.Errorf("expected default stages, got %d", len(cfg.Difficulty.Stages))
				}
			},
		},
		{
			name: "explicit empty stage list disables the ramp",
			yamlContent: `
difficulty:
  stages: []
initialEnemies: []
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if len(cfg.Difficulty.Stages) != 0 || len(cfg.InitialEnemies) != 0 {
					t.Errorf("explicit empty lists must be kept: %+v %+v", cfg.Difficulty.Stages, cfg.InitialEnemies)
				}
			},
		},
		{
			name: "custom enemy kind gets bounce default",
			yamlContent: `
enemies:
  penguin:
    maxRunVelocity: 1.5
    defaultRunVelocity: 0.04
    jumpVelocity: 2
    chanceToJump: 0.3
    decideMin: 1
    decideMax: 3
    radius: 6
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				p, ok := cfg.Enemy("penguin")
				if !ok || p.BounceChance != 0.8 {
					t.Errorf("penguin tuning mismatch: %+v", p)
				}
				if _, ok := cfg.Enemy("bear"); ok {
					t.Error("an explicit enemies map replaces the defaults")
				}
			},
		},
		{
			name: "stage with unknown kind is accepted",
			yamlContent: `
difficulty:
  stages:
    - at: 5
      enemy: {kind: dragon, x: 1, y: 1}
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Difficulty.Stages[0].Enemy.Kind != "dragon" {
					t.Errorf("stage not loaded: %+v", cfg.Difficulty.Stages[0])
				}
			},
		},
		{
			name: "duplicate stage time",
			yamlContent: `
difficulty:
  stages:
    - at: 10
    - at: 10
`,
			wantErr:     true,
			errContains: "duplicate trigger time",
		},
		{
			name: "initial health above max",
			yamlContent: `
goal:
  maxHealth: 50
  initialHealth: 60
`,
			wantErr:     true,
			errContains: "exceeds maxHealth",
		},
		{
			name: "inverted decide range",
			yamlContent: `
enemies:
  bear:
    decideMin: 6
    decideMax: 2
`,
			wantErr:     true,
			errContains: "decide range invalid",
		},
		{
			name:        "malformed yaml",
			yamlContent: "physics: [",
			wantErr:     true,
			errContains: "failed to parse game config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
