package systems

import (
	"testing"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/entities"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/utils"
)

// testWorld is a realized world with a factory; systems under test get their
// own random source.
type testWorld struct {
	em       *ecs.EntityManager
	world    *physics.World
	registry *entities.BodyRegistry
	cfg      *config.GameConfig
	factory  *entities.BodyFactory
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	tw := &testWorld{
		em:       ecs.NewEntityManager(),
		world:    physics.NewWorld(physics.DefaultGravity),
		registry: entities.NewBodyRegistry(),
		cfg:      config.DefaultGameConfig(),
	}
	factory, err := entities.NewBodyFactory(tw.em, tw.world, tw.registry, tw.cfg, utils.NewRandomSource(7))
	if err != nil {
		t.Fatalf("NewBodyFactory() error = %v", err)
	}
	tw.factory = factory
	t.Cleanup(tw.world.Close)
	return tw
}

func (tw *testWorld) body(t *testing.T, id ecs.EntityID) *physics.Body {
	t.Helper()
	bc, ok := ecs.GetComponent[*components.BodyComponent](tw.em, id)
	if !ok {
		t.Fatalf("entity %d has no body", id)
	}
	return bc.Body
}

func (tw *testWorld) mustPlayer(t *testing.T) ecs.EntityID {
	t.Helper()
	id, err := tw.factory.CreatePlayer()
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	return id
}

func (tw *testWorld) mustEnemy(t *testing.T, kind string) ecs.EntityID {
	t.Helper()
	id, err := tw.factory.CreateEnemy(kind, 3, 0.5)
	if err != nil {
		t.Fatalf("CreateEnemy(%q) error = %v", kind, err)
	}
	return id
}

// fakeSpawner records enemy spawns and rejects kinds it does not know.
type fakeSpawner struct {
	known   map[string]bool
	next    ecs.EntityID
	spawned []string
}

func newFakeSpawner(kinds ...string) *fakeSpawner {
	known := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		known[k] = true
	}
	return &fakeSpawner{known: known, next: 100}
}

func (f *fakeSpawner) CreateEnemy(kind string, _, _ float64) (ecs.EntityID, error) {
	if !f.known[kind] {
		return 0, entities.ErrUnrecognizedEntityKind
	}
	f.next++
	f.spawned = append(f.spawned, kind)
	return f.next, nil
}

// testLevelGroundOnly has one ground rectangle and one enemy boundary, in
// that creation order.
func testLevelGroundOnly() *config.LevelMap {
	return &config.LevelMap{
		Name:   "flat",
		Width:  400,
		Height: 208,
		Layers: []config.MapLayer{
			{Index: config.GroundLayer, Objects: []config.MapRect{{X: 0, Y: 0, Width: 400, Height: 16}}},
			{Index: config.SpawnLayer, Objects: []config.MapRect{{X: 100, Y: 16}, {X: 200, Y: 16}, {X: 300, Y: 16}}},
			{Index: config.EnemyBoundaryLayer, Objects: []config.MapRect{{X: 380, Y: 16, Width: 4, Height: 32}}},
		},
	}
}
