package systems

import (
	"log"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/entities"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/types"
)

// Contact keys: the union of the two fixtures' categories.
const (
	keyEnemyGround         = types.CategoryEnemy | types.CategoryGround
	keyEnemyBoundary       = types.CategoryEnemy | types.CategoryEnemyBoundary
	keyPlayerEnemy         = types.CategoryPlayer | types.CategoryEnemy
	keyCarryingPlayerEnemy = types.CategoryPlayerCarrying | types.CategoryEnemy
	keyPlayerCollectible   = types.CategoryPlayer | types.CategoryCollectible
	keyCarryingPlayerGoal  = types.CategoryPlayerCarrying | types.CategoryGoal
)

// ContactSystem reacts to begin-contact events. It runs inside the physics
// step, so it only flips flags and filters; bodies are destroyed later by the
// collectible sweep.
type ContactSystem struct {
	physics.NopContactListener

	em            *ecs.EntityManager
	registry      *entities.BodyRegistry
	players       *PlayerSystem
	enemies       *EnemyAISystem
	health        HealthSink
	deliveryBonus int
}

// NewContactSystem creates the system.
//
// Parameters:
//   - em: entity manager
//   - registry: resolves bodies to entities
//   - players: receives hits, pickups and deliveries
//   - enemies: receives bounces
//   - health: Bob's health, credited on delivery
//   - deliveryBonus: health per delivered snowball
func NewContactSystem(em *ecs.EntityManager, registry *entities.BodyRegistry, players *PlayerSystem,
	enemies *EnemyAISystem, health HealthSink, deliveryBonus int) *ContactSystem {
	return &ContactSystem{
		em:            em,
		registry:      registry,
		players:       players,
		enemies:       enemies,
		health:        health,
		deliveryBonus: deliveryBonus,
	}
}

// BeginContact dispatches on the category pair.
func (s *ContactSystem) BeginContact(c physics.Contact) {
	switch c.A.Filter().Category | c.B.Filter().Category {
	case keyEnemyGround, keyEnemyBoundary:
		s.bounce(c)
	case keyPlayerEnemy, keyCarryingPlayerEnemy:
		s.hit(c)
	case keyPlayerCollectible:
		s.pickUp(c)
	case keyCarryingPlayerGoal:
		s.deliver(c)
	}
}

// side returns the entity of the fixture whose category includes cat.
func (s *ContactSystem) side(c physics.Contact, cat types.CollisionCategory) (ecs.EntityID, *physics.Body, bool) {
	for _, b := range []*physics.Body{c.A, c.B} {
		if b.Filter().Category.Has(cat) {
			id, ok := s.registry.Lookup(b.ID())
			return id, b, ok
		}
	}
	return 0, nil, false
}

func (s *ContactSystem) bounce(c physics.Contact) {
	enemy, _, ok := s.side(c, types.CategoryEnemy)
	if !ok {
		return
	}
	turned, err := s.enemies.ReverseHorizontal(enemy)
	if err != nil {
		log.Printf("[ContactSystem] Bounce failed: %v", err)
		return
	}
	if turned {
		log.Printf("[ContactSystem] Enemy %d turned around", enemy)
	}
}

func (s *ContactSystem) hit(c physics.Contact) {
	player, _, ok := s.side(c, types.CategoryPlayer)
	if !ok {
		player, _, ok = s.side(c, types.CategoryPlayerCarrying)
	}
	if !ok {
		return
	}
	if err := s.players.OnEnemyHit(player); err != nil {
		log.Printf("[ContactSystem] Hit failed: %v", err)
		return
	}
	log.Printf("[ContactSystem] Player %d hit by an enemy", player)
}

func (s *ContactSystem) pickUp(c physics.Contact) {
	player, _, okP := s.side(c, types.CategoryPlayer)
	item, itemBody, okI := s.side(c, types.CategoryCollectible)
	if !okP || !okI {
		return
	}
	cc, ok := ecs.GetComponent[*components.CollectibleComponent](s.em, item)
	if !ok || cc.ToCollect {
		return
	}

	cc.ToCollect = true
	itemBody.SetFilter(types.DestroyedFilter)
	if err := s.players.CollectItem(player); err != nil {
		log.Printf("[ContactSystem] Pickup failed: %v", err)
		return
	}
	log.Printf("[ContactSystem] Player %d picked up snowball %d (slot %d)", player, item, cc.Slot)
}

func (s *ContactSystem) deliver(c physics.Contact) {
	player, _, ok := s.side(c, types.CategoryPlayerCarrying)
	if !ok {
		return
	}
	if err := s.players.DeliverItem(player); err != nil {
		log.Printf("[ContactSystem] Delivery failed: %v", err)
		return
	}
	health := s.health.AddHealth(s.deliveryBonus)
	log.Printf("[ContactSystem] Snowball delivered, Bob's health %d", health)
}
