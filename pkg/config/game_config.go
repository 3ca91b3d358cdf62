package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds every tuning value of a session.
//
// Lengths under player, goal and collectibles are pixels; enemy velocities,
// impulses and spawn positions are meters.
//
// Config file: data/game.yaml
type GameConfig struct {
	Physics        PhysicsConfig          `yaml:"physics"`
	Player         PlayerConfig           `yaml:"player"`
	Goal           GoalConfig             `yaml:"goal"`
	Collectibles   CollectibleConfig      `yaml:"collectibles"`
	Enemies        map[string]EnemyConfig `yaml:"enemies"`
	InitialEnemies []EnemySpawn           `yaml:"initialEnemies"`
	Difficulty     DifficultyConfig       `yaml:"difficulty"`
}

// Vec2 is a YAML-friendly 2D vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PhysicsConfig configures the world step.
type PhysicsConfig struct {
	Gravity            Vec2    `yaml:"gravity"`            // m/s²
	TimeStep           float64 `yaml:"timeStep"`           // fixed step, seconds
	VelocityIterations int     `yaml:"velocityIterations"` // solver budget
	PositionIterations int     `yaml:"positionIterations"` // solver budget
	Friction           float64 `yaml:"friction"`           // pair friction coefficient
}

// PlayerConfig tunes the player body and its intents.
type PlayerConfig struct {
	Spawn                 Vec2    `yaml:"spawn"`                 // pixels
	Radius                float64 `yaml:"radius"`                // pixels
	JumpImpulse           float64 `yaml:"jumpImpulse"`           // m/s
	InvincibleJumpImpulse float64 `yaml:"invincibleJumpImpulse"` // m/s
	RunImpulse            float64 `yaml:"runImpulse"`            // m/s per press
	InvincibleRunImpulse  float64 `yaml:"invincibleRunImpulse"`  // m/s per press
	MaxRunVelocity        float64 `yaml:"maxRunVelocity"`        // |vx| ceiling for move intents
	InvincibleDuration    float64 `yaml:"invincibleDuration"`    // seconds
	FlickerInterval       float64 `yaml:"flickerInterval"`       // seconds between alpha toggles
	FlickerAlpha          float64 `yaml:"flickerAlpha"`          // dimmed alpha
}

// GoalConfig tunes Bob and the health economy.
type GoalConfig struct {
	Spawn         Vec2    `yaml:"spawn"`  // pixels
	Radius        float64 `yaml:"radius"` // pixels
	MaxHealth     int     `yaml:"maxHealth"`
	InitialHealth int     `yaml:"initialHealth"`
	DeliveryBonus int     `yaml:"deliveryBonus"` // health per delivered snowball
	BaseDecayRate int     `yaml:"baseDecayRate"` // health lost per second before any stage
}

// CollectibleConfig tunes snowball spawning.
type CollectibleConfig struct {
	MaxCount      int     `yaml:"maxCount"`      // slot array length
	SpawnInterval float64 `yaml:"spawnInterval"` // seconds
	Size          float64 `yaml:"size"`          // box edge, pixels
	SpawnOffset   Vec2    `yaml:"spawnOffset"`   // added to the spawn rectangle origin, pixels
}

// EnemyConfig tunes one enemy kind. All kinds share the same AI.
type EnemyConfig struct {
	MaxRunVelocity     float64 `yaml:"maxRunVelocity"`     // run impulses stop above this |vx|
	DefaultRunVelocity float64 `yaml:"defaultRunVelocity"` // run impulse per tick
	JumpVelocity       float64 `yaml:"jumpVelocity"`       // jump impulse
	ChanceToJump       float64 `yaml:"chanceToJump"`       // probability per decision
	BounceChance       float64 `yaml:"bounceChance"`       // probability of turning on ground/boundary contact
	DecideMin          float64 `yaml:"decideMin"`          // decision period lower bound, seconds
	DecideMax          float64 `yaml:"decideMax"`          // decision period upper bound, seconds
	Radius             float64 `yaml:"radius"`             // pixels
}

// EnemySpawn requests one enemy of Kind at (X, Y) meters.
type EnemySpawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// DifficultyConfig is the time-indexed difficulty ramp.
type DifficultyConfig struct {
	Stages []DifficultyStage `yaml:"stages"`
}

// DifficultyStage fires once when the world timer equals At.
type DifficultyStage struct {
	At            int         `yaml:"at"`            // world timer, seconds
	Enemy         *EnemySpawn `yaml:"enemy"`         // optional
	DecayIncrease int         `yaml:"decayIncrease"` // added to the decay rate
}

// DefaultGameConfig returns the stock tuning.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Physics: PhysicsConfig{
			Gravity:            Vec2{X: 0, Y: -10},
			TimeStep:           1.0 / 60.0,
			VelocityIterations: 6,
			PositionIterations: 2,
			Friction:           0.2,
		},
		Player: PlayerConfig{
			Spawn:                 Vec2{X: 128, Y: 64},
			Radius:                7,
			JumpImpulse:           3.2,
			InvincibleJumpImpulse: 2.2,
			RunImpulse:            0.1,
			InvincibleRunImpulse:  0.04,
			MaxRunVelocity:        2,
			InvincibleDuration:    4,
			FlickerInterval:       0.2,
			FlickerAlpha:          0.2,
		},
		Goal: GoalConfig{
			Spawn:         Vec2{X: 112, Y: 74},
			Radius:        10,
			MaxHealth:     100,
			InitialHealth: 100,
			DeliveryBonus: 10,
			BaseDecayRate: 2,
		},
		Collectibles: CollectibleConfig{
			MaxCount:      5,
			SpawnInterval: 3,
			Size:          12,
			SpawnOffset:   Vec2{X: 8, Y: 8},
		},
		Enemies: DefaultEnemies(),
		InitialEnemies: []EnemySpawn{
			{Kind: "bear", X: 0.32, Y: 0.32},
		},
		Difficulty: DifficultyConfig{
			Stages: []DifficultyStage{
				{At: 10, Enemy: &EnemySpawn{Kind: "chicken", X: 6.0, Y: 0.4}},
				{At: 20, Enemy: &EnemySpawn{Kind: "bear", X: 9.0, Y: 0.4}, DecayIncrease: 1},
				{At: 30, Enemy: &EnemySpawn{Kind: "chicken", X: 3.0, Y: 0.4}},
				{At: 40, Enemy: &EnemySpawn{Kind: "bear", X: 11.0, Y: 0.4}, DecayIncrease: 1},
			},
		},
	}
}

// DefaultEnemies returns the stock tuning of every enemy kind.
func DefaultEnemies() map[string]EnemyConfig {
	return map[string]EnemyConfig{
		"bear": {
			MaxRunVelocity:     2,
			DefaultRunVelocity: 0.05,
			JumpVelocity:       3,
			ChanceToJump:       0.5,
			BounceChance:       0.8,
			DecideMin:          1,
			DecideMax:          5,
			Radius:             7,
		},
		"chicken": {
			MaxRunVelocity:     1,
			DefaultRunVelocity: 0.035,
			JumpVelocity:       1,
			ChanceToJump:       0.7,
			BounceChance:       0.8,
			DecideMin:          2,
			DecideMax:          10,
			Radius:             7,
		},
	}
}

// LoadGameConfig reads and validates a game config file.
//
// Parameters:
//   - path: YAML file path (e.g. "data/game.yaml")
//
// Returns:
//   - *GameConfig: config with defaults applied
//   - error: read, parse or validation failure
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := LoadGameConfigFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameConfigFromBytes parses, defaults and validates YAML config data.
func LoadGameConfigFromBytes(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	applyGameDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &cfg, nil
}

// applyGameDefaults fills zero-valued fields from DefaultGameConfig so that
// partial files stay loadable. Lists (initial enemies, stages) are only
// defaulted when the key is missing entirely.
func applyGameDefaults(cfg *GameConfig) {
	def := DefaultGameConfig()

	p := &cfg.Physics
	if p.Gravity == (Vec2{}) {
		p.Gravity = def.Physics.Gravity
	}
	setFloat(&p.TimeStep, def.Physics.TimeStep)
	setInt(&p.VelocityIterations, def.Physics.VelocityIterations)
	setInt(&p.PositionIterations, def.Physics.PositionIterations)
	setFloat(&p.Friction, def.Physics.Friction)

	pl := &cfg.Player
	if pl.Spawn == (Vec2{}) {
		pl.Spawn = def.Player.Spawn
	}
	setFloat(&pl.Radius, def.Player.Radius)
	setFloat(&pl.JumpImpulse, def.Player.JumpImpulse)
	setFloat(&pl.InvincibleJumpImpulse, def.Player.InvincibleJumpImpulse)
	setFloat(&pl.RunImpulse, def.Player.RunImpulse)
	setFloat(&pl.InvincibleRunImpulse, def.Player.InvincibleRunImpulse)
	setFloat(&pl.MaxRunVelocity, def.Player.MaxRunVelocity)
	setFloat(&pl.InvincibleDuration, def.Player.InvincibleDuration)
	setFloat(&pl.FlickerInterval, def.Player.FlickerInterval)
	setFloat(&pl.FlickerAlpha, def.Player.FlickerAlpha)

	g := &cfg.Goal
	if g.Spawn == (Vec2{}) {
		g.Spawn = def.Goal.Spawn
	}
	setFloat(&g.Radius, def.Goal.Radius)
	setInt(&g.MaxHealth, def.Goal.MaxHealth)
	setInt(&g.InitialHealth, g.MaxHealth)
	setInt(&g.DeliveryBonus, def.Goal.DeliveryBonus)
	setInt(&g.BaseDecayRate, def.Goal.BaseDecayRate)

	c := &cfg.Collectibles
	setInt(&c.MaxCount, def.Collectibles.MaxCount)
	setFloat(&c.SpawnInterval, def.Collectibles.SpawnInterval)
	setFloat(&c.Size, def.Collectibles.Size)
	if c.SpawnOffset == (Vec2{}) {
		c.SpawnOffset = def.Collectibles.SpawnOffset
	}

	if cfg.Enemies == nil {
		cfg.Enemies = def.Enemies
	}
	for name, e := range cfg.Enemies {
		if base, ok := def.Enemies[name]; ok {
			setFloat(&e.MaxRunVelocity, base.MaxRunVelocity)
			setFloat(&e.DefaultRunVelocity, base.DefaultRunVelocity)
			setFloat(&e.JumpVelocity, base.JumpVelocity)
			setFloat(&e.ChanceToJump, base.ChanceToJump)
			setFloat(&e.DecideMin, base.DecideMin)
			setFloat(&e.DecideMax, base.DecideMax)
			setFloat(&e.Radius, base.Radius)
		}
		setFloat(&e.BounceChance, 0.8)
		cfg.Enemies[name] = e
	}

	if cfg.InitialEnemies == nil {
		cfg.InitialEnemies = def.InitialEnemies
	}
	if cfg.Difficulty.Stages == nil {
		cfg.Difficulty.Stages = def.Difficulty.Stages
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate checks ranges. Unknown enemy kinds in spawn lists are accepted
// here; spawning reports them at runtime.
func (c *GameConfig) Validate() error {
	if c.Physics.TimeStep <= 0 {
		return fmt.Errorf("physics.timeStep must be > 0, got %v", c.Physics.TimeStep)
	}
	if c.Physics.VelocityIterations < 1 || c.Physics.PositionIterations < 1 {
		return fmt.Errorf("physics iterations must be >= 1, got %d/%d",
			c.Physics.VelocityIterations, c.Physics.PositionIterations)
	}
	if c.Player.Radius <= 0 || c.Goal.Radius <= 0 || c.Collectibles.Size <= 0 {
		return fmt.Errorf("body sizes must be > 0")
	}
	if c.Player.InvincibleDuration <= 0 || c.Player.FlickerInterval <= 0 {
		return fmt.Errorf("player timers must be > 0")
	}
	if c.Player.FlickerAlpha < 0 || c.Player.FlickerAlpha > 1 {
		return fmt.Errorf("player.flickerAlpha must be in [0, 1], got %v", c.Player.FlickerAlpha)
	}
	if c.Goal.MaxHealth <= 0 {
		return fmt.Errorf("goal.maxHealth must be > 0, got %d", c.Goal.MaxHealth)
	}
	if c.Goal.InitialHealth > c.Goal.MaxHealth {
		return fmt.Errorf("goal.initialHealth (%d) exceeds maxHealth (%d)", c.Goal.InitialHealth, c.Goal.MaxHealth)
	}
	if c.Goal.DeliveryBonus < 0 || c.Goal.BaseDecayRate < 0 {
		return fmt.Errorf("goal.deliveryBonus and goal.baseDecayRate must be >= 0")
	}
	if c.Collectibles.MaxCount < 1 {
		return fmt.Errorf("collectibles.maxCount must be >= 1, got %d", c.Collectibles.MaxCount)
	}
	if c.Collectibles.SpawnInterval <= 0 {
		return fmt.Errorf("collectibles.spawnInterval must be > 0, got %v", c.Collectibles.SpawnInterval)
	}

	for name, e := range c.Enemies {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("enemy %q: %w", name, err)
		}
	}

	seen := make(map[int]bool, len(c.Difficulty.Stages))
	for i, s := range c.Difficulty.Stages {
		if s.At <= 0 {
			return fmt.Errorf("difficulty stage %d: at must be > 0, got %d", i, s.At)
		}
		if seen[s.At] {
			return fmt.Errorf("difficulty stage %d: duplicate trigger time %d", i, s.At)
		}
		seen[s.At] = true
		if s.DecayIncrease < 0 {
			return fmt.Errorf("difficulty stage %d: decayIncrease must be >= 0", i)
		}
	}
	return nil
}

// Validate checks one enemy tuning.
func (e EnemyConfig) Validate() error {
	if e.MaxRunVelocity <= 0 || e.DefaultRunVelocity <= 0 {
		return fmt.Errorf("run velocities must be > 0")
	}
	if e.ChanceToJump < 0 || e.ChanceToJump > 1 {
		return fmt.Errorf("chanceToJump must be in [0, 1], got %v", e.ChanceToJump)
	}
	if e.BounceChance < 0 || e.BounceChance > 1 {
		return fmt.Errorf("bounceChance must be in [0, 1], got %v", e.BounceChance)
	}
	if e.DecideMin <= 0 || e.DecideMin > e.DecideMax {
		return fmt.Errorf("decide range invalid: min(%.2f) max(%.2f)", e.DecideMin, e.DecideMax)
	}
	if e.Radius <= 0 {
		return fmt.Errorf("radius must be > 0")
	}
	return nil
}

// Enemy returns the tuning of a kind name.
func (c *GameConfig) Enemy(kind string) (EnemyConfig, bool) {
	e, ok := c.Enemies[kind]
	return e, ok
}
