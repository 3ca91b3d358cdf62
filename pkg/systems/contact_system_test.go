package systems

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
	"github.com/gonewx/bobmelting/pkg/utils/mocks"
)

type contactFixture struct {
	*testWorld
	rng      *mocks.MockRandomSource
	players  *PlayerSystem
	health   *HealthPool
	contacts *ContactSystem
	player   ecs.EntityID
}

func newContactFixture(t *testing.T, initialHealth int) *contactFixture {
	t.Helper()

	tw := newTestWorld(t)
	rng := mocks.NewMockRandomSource(gomock.NewController(t))
	fx := &contactFixture{
		testWorld: tw,
		rng:       rng,
		players:   NewPlayerSystem(tw.em, tw.cfg.Player),
		health:    NewHealthPool(initialHealth, tw.cfg.Goal.MaxHealth),
	}
	fx.contacts = NewContactSystem(tw.em, tw.registry, fx.players, NewEnemyAISystem(tw.em, rng),
		fx.health, tw.cfg.Goal.DeliveryBonus)
	fx.player = tw.mustPlayer(t)
	return fx
}

func (fx *contactFixture) snowball(t *testing.T, slots []ecs.EntityID, slot int) ecs.EntityID {
	t.Helper()
	id, err := fx.factory.CreateCollectible(physics.V(300, 16), slots, slot)
	if err != nil {
		t.Fatalf("CreateCollectible() error = %v", err)
	}
	return id
}

func TestContactSystem_PickUpAndDeliver(t *testing.T) {
	for _, swapped := range []bool{false, true} {
		name := "player first"
		if swapped {
			name = "player second"
		}
		t.Run(name, func(t *testing.T) {
			fx := newContactFixture(t, 95)
			slots := make([]ecs.EntityID, 1)
			item := fx.snowball(t, slots, 0)
			goal, _ := fx.factory.CreateGoal()

			pair := func(a, b ecs.EntityID) physics.Contact {
				if swapped {
					a, b = b, a
				}
				return physics.Contact{A: fx.body(t, a), B: fx.body(t, b)}
			}

			fx.contacts.BeginContact(pair(fx.player, item))

			cc, _ := ecs.GetComponent[*components.CollectibleComponent](fx.em, item)
			if !cc.ToCollect {
				t.Error("snowball not marked for collection")
			}
			if got := fx.body(t, item).Filter(); got != types.DestroyedFilter {
				t.Errorf("snowball filter = %+v, want DestroyedFilter", got)
			}
			if got := fx.body(t, fx.player).Filter(); got != types.PlayerCarryingFilter {
				t.Errorf("player filter = %+v, want PlayerCarryingFilter", got)
			}

			fx.contacts.BeginContact(pair(fx.player, goal))

			if fx.health.Value() != 100 {
				t.Errorf("health = %d, want 100 (95 + 10 clamped)", fx.health.Value())
			}
			pc, _ := ecs.GetComponent[*components.PlayerComponent](fx.em, fx.player)
			if pc.Carrying {
				t.Error("player still carrying after delivery")
			}
			if got := fx.body(t, fx.player).Filter(); got != types.PlayerNormalFilter {
				t.Errorf("player filter = %+v, want PlayerNormalFilter", got)
			}
		})
	}
}

func TestContactSystem_HitWhileCarrying(t *testing.T) {
	fx := newContactFixture(t, 50)
	slots := make([]ecs.EntityID, 1)
	item := fx.snowball(t, slots, 0)
	bear := fx.mustEnemy(t, "bear")
	goal, _ := fx.factory.CreateGoal()

	fx.contacts.BeginContact(physics.Contact{A: fx.body(t, fx.player), B: fx.body(t, item)})
	fx.contacts.BeginContact(physics.Contact{A: fx.body(t, bear), B: fx.body(t, fx.player)})

	pc, _ := ecs.GetComponent[*components.PlayerComponent](fx.em, fx.player)
	if pc.Carrying || !pc.Invincible {
		t.Fatalf("player = %+v, want invincible and empty-handed", pc)
	}

	// The invincible filter never reaches the goal, but even a forced contact
	// must not credit a delivery.
	fx.contacts.BeginContact(physics.Contact{A: fx.body(t, fx.player), B: fx.body(t, goal)})
	if fx.health.Value() != 50 {
		t.Errorf("health = %d, want unchanged 50", fx.health.Value())
	}
}

func TestContactSystem_EnemyBounce(t *testing.T) {
	tests := []struct {
		name string
		tile func(fx *contactFixture) ecs.EntityID
	}{
		{"ground", func(fx *contactFixture) ecs.EntityID {
			ids, _ := fx.factory.CreateTiles(testLevelGroundOnly())
			return ids[0]
		}},
		{"enemy boundary", func(fx *contactFixture) ecs.EntityID {
			ids, _ := fx.factory.CreateTiles(testLevelGroundOnly())
			return ids[1]
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newContactFixture(t, 100)
			fx.rng.EXPECT().Chance(0.8).Return(true)
			bear := fx.mustEnemy(t, "bear")
			tile := tt.tile(fx)

			fx.contacts.BeginContact(physics.Contact{A: fx.body(t, tile), B: fx.body(t, bear)})

			ec, _ := ecs.GetComponent[*components.EnemyComponent](fx.em, bear)
			if ec.MoveVelocity.X >= 0 {
				t.Errorf("MoveVelocity.X = %v, want reversed", ec.MoveVelocity.X)
			}
		})
	}
}

func TestContactSystem_UnmappedPairsAreIgnored(t *testing.T) {
	fx := newContactFixture(t, 100)
	ids, _ := fx.factory.CreateTiles(testLevelGroundOnly())
	bear := fx.mustEnemy(t, "bear")
	chicken := fx.mustEnemy(t, "chicken")
	goal, _ := fx.factory.CreateGoal()

	pairs := [][2]ecs.EntityID{
		{fx.player, ids[0]},
		{bear, chicken},
		{fx.player, goal},
	}
	for _, p := range pairs {
		fx.contacts.BeginContact(physics.Contact{A: fx.body(t, p[0]), B: fx.body(t, p[1])})
	}

	pc, _ := ecs.GetComponent[*components.PlayerComponent](fx.em, fx.player)
	if pc.Carrying || pc.Invincible {
		t.Errorf("player changed on unmapped contacts: %+v", pc)
	}
	if fx.health.Value() != 100 {
		t.Errorf("health = %d, want 100", fx.health.Value())
	}
}
