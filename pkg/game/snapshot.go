package game

import (
	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
)

// EntitySnapshot is the read-only view of one entity. Positions and sizes
// are in pixels.
type EntitySnapshot struct {
	ID           ecs.EntityID
	Name         string // "player", "bob", "snowball" or the enemy kind
	Position     physics.Vec
	Velocity     physics.Vec // meters per second
	Radius       float64     // circles
	Size         float64     // boxes
	State        types.MovementState
	StateTimer   float64
	RunningRight bool
	Alpha        float64
	Invincible   bool
	Carrying     bool
}

// TileSnapshot is a static map rectangle, in pixels.
type TileSnapshot struct {
	Kind components.TileKind
	Rect config.MapRect
}

// Snapshot is everything the presentation layer reads in one frame.
type Snapshot struct {
	SessionID    string
	WorldTimer   int
	Health       int
	MaxHealth    int
	DecayRate    int
	Stage        int
	GameOver     bool
	Player       EntitySnapshot
	Goal         EntitySnapshot
	Enemies      []EntitySnapshot
	Collectibles []EntitySnapshot
	Tiles        []TileSnapshot
	LevelWidth   float64
	LevelHeight  float64
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:   s.ID(),
		WorldTimer:  s.worldTimer,
		Health:      s.health.Value(),
		MaxHealth:   s.health.Max(),
		DecayRate:   s.difficulty.DecayRate(),
		Stage:       s.difficulty.Stage(),
		GameOver:    s.IsGameOver(),
		Player:      s.entitySnapshot(s.player, "player"),
		Goal:        s.entitySnapshot(s.goal, "bob"),
		LevelWidth:  s.level.Width,
		LevelHeight: s.level.Height,
	}

	for _, id := range s.enemies {
		name := "enemy"
		if ec, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id); ok {
			name = ec.Name
		}
		snap.Enemies = append(snap.Enemies, s.entitySnapshot(id, name))
	}
	for _, id := range s.collectibles.Slots() {
		if id != 0 {
			snap.Collectibles = append(snap.Collectibles, s.entitySnapshot(id, "snowball"))
		}
	}
	for _, id := range s.tiles {
		if tc, ok := ecs.GetComponent[*components.TileComponent](s.em, id); ok {
			snap.Tiles = append(snap.Tiles, TileSnapshot{Kind: tc.Kind, Rect: tc.Rect})
		}
	}
	return snap
}

func (s *Session) entitySnapshot(id ecs.EntityID, name string) EntitySnapshot {
	es := EntitySnapshot{ID: id, Name: name, Alpha: 1}

	if bc, ok := ecs.GetComponent[*components.BodyComponent](s.em, id); ok && !bc.Body.Destroyed() {
		es.Position = bc.Body.Position().Pixels()
		es.Velocity = bc.Body.LinearVelocity()
		switch shape := bc.Body.Shape(); shape.Kind {
		case physics.ShapeCircle:
			es.Radius = physics.ToPixels(shape.Radius)
		case physics.ShapeBox:
			es.Size = physics.ToPixels(shape.Width)
		}
	}
	if mc, ok := ecs.GetComponent[*components.MovementComponent](s.em, id); ok {
		es.State = mc.State
		es.StateTimer = mc.StateTimer
		es.RunningRight = mc.RunningRight
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, id); ok {
		es.Alpha = pc.Alpha
		es.Invincible = pc.Invincible
		es.Carrying = pc.Carrying
	}
	return es
}
