package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
	"github.com/gonewx/bobmelting/pkg/utils"
)

var (
	// ErrUnrecognizedEntityKind is returned when an enemy kind has no tuning.
	ErrUnrecognizedEntityKind = errors.New("unrecognized entity kind")
	// ErrInvalidSlot is returned when a collectible slot index is out of range.
	ErrInvalidSlot = errors.New("collectible slot out of range")
)

// BodyFactory turns entity kinds into realized entities: it builds the
// blueprint, creates the body, attaches components and registers the body.
//
// The player and Bob are singletons per factory; a session owns exactly one
// factory.
type BodyFactory struct {
	em       *ecs.EntityManager
	world    *physics.World
	registry *BodyRegistry
	cfg      *config.GameConfig
	rng      utils.RandomSource

	player ecs.EntityID
	goal   ecs.EntityID
}

// NewBodyFactory wires a factory to its collaborators.
//
// Parameters:
//   - em: entity manager receiving the entities
//   - world: physics world receiving the bodies
//   - registry: body to entity lookup kept in sync with the world
//   - cfg: tuning for every entity kind
//   - rng: source for per-enemy decision periods
func NewBodyFactory(em *ecs.EntityManager, world *physics.World, registry *BodyRegistry,
	cfg *config.GameConfig, rng utils.RandomSource) (*BodyFactory, error) {
	switch {
	case em == nil:
		return nil, fmt.Errorf("entity manager cannot be nil")
	case world == nil:
		return nil, fmt.Errorf("physics world cannot be nil")
	case registry == nil:
		return nil, fmt.Errorf("body registry cannot be nil")
	case cfg == nil:
		return nil, fmt.Errorf("game config cannot be nil")
	case rng == nil:
		return nil, fmt.Errorf("random source cannot be nil")
	}
	return &BodyFactory{em: em, world: world, registry: registry, cfg: cfg, rng: rng}, nil
}

// realize creates the body first so that a failure leaves no half-built
// entity behind.
func (f *BodyFactory) realize(bp physics.Blueprint) (ecs.EntityID, *physics.Body, error) {
	if bp.Friction == 0 {
		bp.Friction = f.cfg.Physics.Friction
	}
	body, err := f.world.CreateBody(bp)
	if err != nil {
		return 0, nil, err
	}
	id := f.em.CreateEntity()
	f.em.AddComponent(id, &components.BodyComponent{Body: body})
	f.registry.Register(body.ID(), id)
	return id, body, nil
}

// CreatePlayer returns the player entity, creating it on the first call.
func (f *BodyFactory) CreatePlayer() (ecs.EntityID, error) {
	if f.player != 0 {
		return f.player, nil
	}

	pc := f.cfg.Player
	id, _, err := f.realize(physics.Blueprint{
		Position: physics.V(pc.Spawn.X, pc.Spawn.Y).Meters(),
		Type:     physics.Dynamic,
		Shape:    physics.Circle(physics.ToMeters(pc.Radius)),
		Filter:   types.PlayerNormalFilter,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}
	f.em.AddComponent(id, &components.MovementComponent{RunningRight: true})
	f.em.AddComponent(id, &components.PlayerComponent{Alpha: 1})

	f.player = id
	log.Printf("[BodyFactory] Player created: entity=%d at (%.0f, %.0f)px", id, pc.Spawn.X, pc.Spawn.Y)
	return id, nil
}

// CreateGoal returns Bob, creating him on the first call.
func (f *BodyFactory) CreateGoal() (ecs.EntityID, error) {
	if f.goal != 0 {
		return f.goal, nil
	}

	gc := f.cfg.Goal
	id, _, err := f.realize(physics.Blueprint{
		Position: physics.V(gc.Spawn.X, gc.Spawn.Y).Meters(),
		Type:     physics.Static,
		Shape:    physics.Circle(physics.ToMeters(gc.Radius)),
		Filter:   types.GoalFilter,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create goal: %w", err)
	}
	f.em.AddComponent(id, &components.GoalComponent{})

	f.goal = id
	log.Printf("[BodyFactory] Goal created: entity=%d at (%.0f, %.0f)px", id, gc.Spawn.X, gc.Spawn.Y)
	return id, nil
}

// CreateEnemy spawns one enemy of a configured kind at (x, y) meters. The
// decision period is drawn once here and never changes.
//
// Returns an error wrapping ErrUnrecognizedEntityKind when kind has no tuning.
func (f *BodyFactory) CreateEnemy(kind string, x, y float64) (ecs.EntityID, error) {
	tuning, ok := f.cfg.Enemy(kind)
	if !ok {
		return 0, fmt.Errorf("%w: enemy %q", ErrUnrecognizedEntityKind, kind)
	}
	enemyKind, _ := types.ParseEnemyKind(kind)

	id, _, err := f.realize(physics.Blueprint{
		Position: physics.V(x, y),
		Type:     physics.Dynamic,
		Shape:    physics.Circle(physics.ToMeters(tuning.Radius)),
		Filter:   types.EnemyFilter,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create enemy %q: %w", kind, err)
	}

	decide := utils.RandomRange(f.rng, tuning.DecideMin, tuning.DecideMax)
	f.em.AddComponent(id, &components.MovementComponent{RunningRight: true})
	f.em.AddComponent(id, &components.EnemyComponent{
		Kind:           enemyKind,
		Name:           kind,
		Tuning:         tuning,
		MoveVelocity:   physics.V(tuning.DefaultRunVelocity, 0),
		DecideDuration: decide,
	})

	log.Printf("[BodyFactory] Enemy %s created: entity=%d at (%.2f, %.2f)m, decide every %.2fs",
		kind, id, x, y, decide)
	return id, nil
}

// CreateCollectible spawns a snowball at a spawn point (pixels) and writes it
// into slots[slot].
func (f *BodyFactory) CreateCollectible(spawn physics.Vec, slots []ecs.EntityID, slot int) (ecs.EntityID, error) {
	if slot < 0 || slot >= len(slots) {
		return 0, fmt.Errorf("%w: %d of %d", ErrInvalidSlot, slot, len(slots))
	}

	cc := f.cfg.Collectibles
	size := physics.ToMeters(cc.Size)
	id, _, err := f.realize(physics.Blueprint{
		Position: spawn.Add(physics.V(cc.SpawnOffset.X, cc.SpawnOffset.Y)).Meters(),
		Type:     physics.Static,
		Shape:    physics.Box(size, size),
		Filter:   types.CollectibleFilter,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create collectible: %w", err)
	}
	f.em.AddComponent(id, &components.CollectibleComponent{Slot: slot})

	slots[slot] = id
	log.Printf("[BodyFactory] Snowball created: entity=%d slot=%d at (%.0f, %.0f)px", id, slot, spawn.X, spawn.Y)
	return id, nil
}

// CreateTiles realizes the ground and enemy-boundary layers as static boxes.
func (f *BodyFactory) CreateTiles(level *config.LevelMap) ([]ecs.EntityID, error) {
	if level == nil {
		return nil, fmt.Errorf("level map cannot be nil")
	}

	layers := []struct {
		index  int
		kind   components.TileKind
		filter types.Filter
	}{
		{config.GroundLayer, components.TileGround, types.GroundFilter},
		{config.EnemyBoundaryLayer, components.TileEnemyBoundary, types.EnemyBoundaryFilter},
	}

	var ids []ecs.EntityID
	for _, layer := range layers {
		for _, rect := range level.Rects(layer.index) {
			cx, cy := rect.Center()
			id, _, err := f.realize(physics.Blueprint{
				Position: physics.V(cx, cy).Meters(),
				Type:     physics.Static,
				Shape:    physics.Box(physics.ToMeters(rect.Width), physics.ToMeters(rect.Height)),
				Filter:   layer.filter,
			})
			if err != nil {
				return ids, fmt.Errorf("failed to create tile on layer %d: %w", layer.index, err)
			}
			f.em.AddComponent(id, &components.TileComponent{Kind: layer.kind, Rect: rect})
			ids = append(ids, id)
		}
	}

	log.Printf("[BodyFactory] %d tiles created for level %q", len(ids), level.Name)
	return ids, nil
}

// SpawnPoints returns the snowball spawn points of a level, in pixels.
func (f *BodyFactory) SpawnPoints(level *config.LevelMap) []physics.Vec {
	rects := level.Rects(config.SpawnLayer)
	points := make([]physics.Vec, 0, len(rects))
	for _, r := range rects {
		points = append(points, physics.V(r.X, r.Y))
	}
	return points
}

// DestroyEntityBody removes an entity's body from the world and the
// registry. The entity itself is left to the caller.
func (f *BodyFactory) DestroyEntityBody(id ecs.EntityID) error {
	bc, ok := ecs.GetComponent[*components.BodyComponent](f.em, id)
	if !ok || bc.Body == nil {
		return fmt.Errorf("entity %d has no body", id)
	}
	if err := f.world.DestroyBody(bc.Body); err != nil {
		return fmt.Errorf("failed to destroy body of entity %d: %w", id, err)
	}
	f.registry.Unregister(bc.Body.ID())
	return nil
}
