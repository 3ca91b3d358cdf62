package entities

import (
	"testing"

	"github.com/gonewx/bobmelting/pkg/config"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/utils"
)

// testFixture bundles a factory with the collaborators it writes into.
type testFixture struct {
	em       *ecs.EntityManager
	world    *physics.World
	registry *BodyRegistry
	cfg      *config.GameConfig
	factory  *BodyFactory
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	fx := &testFixture{
		em:       ecs.NewEntityManager(),
		world:    physics.NewWorld(physics.DefaultGravity),
		registry: NewBodyRegistry(),
		cfg:      config.DefaultGameConfig(),
	}
	factory, err := NewBodyFactory(fx.em, fx.world, fx.registry, fx.cfg, utils.NewRandomSource(1))
	if err != nil {
		t.Fatalf("NewBodyFactory() error = %v", err)
	}
	fx.factory = factory
	t.Cleanup(fx.world.Close)
	return fx
}

func testLevel() *config.LevelMap {
	return &config.LevelMap{
		Name:   "test",
		Width:  640,
		Height: 208,
		Layers: []config.MapLayer{
			{Index: config.GroundLayer, Name: "ground", Objects: []config.MapRect{
				{X: 0, Y: 0, Width: 640, Height: 16},
				{X: 200, Y: 96, Width: 64, Height: 16},
			}},
			{Index: config.SpawnLayer, Name: "spawns", Objects: []config.MapRect{
				{X: 300, Y: 16},
				{X: 500, Y: 16},
				{X: 216, Y: 112},
			}},
			{Index: config.EnemyBoundaryLayer, Name: "boundaries", Objects: []config.MapRect{
				{X: 32, Y: 16, Width: 4, Height: 32},
			}},
		},
	}
}
