package systems

import (
	"log"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
	"github.com/gonewx/bobmelting/pkg/utils"
)

// CollectibleFactory creates and destroys snowball bodies.
type CollectibleFactory interface {
	CreateCollectible(spawn physics.Vec, slots []ecs.EntityID, slot int) (ecs.EntityID, error)
	DestroyEntityBody(id ecs.EntityID) error
}

// CollectibleSpawnSystem keeps the snowball slots filled. Every interval it
// spawns into the first empty slot at the next point of a shuffled queue; the
// queue is refilled and reshuffled whenever it runs dry.
type CollectibleSpawnSystem struct {
	em       *ecs.EntityManager
	factory  CollectibleFactory
	rng      utils.RandomSource
	points   []physics.Vec
	queue    []physics.Vec
	slots    []ecs.EntityID
	interval float64
	timer    float64
}

// NewCollectibleSpawnSystem creates the system with maxCount empty slots and
// a freshly shuffled queue.
//
// Parameters:
//   - em: entity manager holding the snowballs
//   - factory: creates and destroys snowball bodies
//   - rng: shuffles the spawn queue
//   - points: spawn points, pixels
//   - maxCount: slot count
//   - interval: seconds between spawns
func NewCollectibleSpawnSystem(em *ecs.EntityManager, factory CollectibleFactory, rng utils.RandomSource,
	points []physics.Vec, maxCount int, interval float64) *CollectibleSpawnSystem {
	s := &CollectibleSpawnSystem{
		em:       em,
		factory:  factory,
		rng:      rng,
		points:   points,
		slots:    make([]ecs.EntityID, maxCount),
		interval: interval,
	}
	s.refill()
	return s
}

func (s *CollectibleSpawnSystem) refill() {
	s.queue = append(s.queue[:0], s.points...)
	s.rng.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
}

// Update advances the spawn timer. Once it exceeds the interval the timer
// resets whether or not a slot was free.
func (s *CollectibleSpawnSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	if s.timer <= s.interval {
		return
	}
	s.timer = 0

	if len(s.points) == 0 {
		return
	}
	for i, id := range s.slots {
		if id != 0 {
			continue
		}
		if len(s.queue) == 0 {
			s.refill()
		}
		point := s.queue[0]
		s.queue = s.queue[1:]

		if _, err := s.factory.CreateCollectible(point, s.slots, i); err != nil {
			log.Printf("[CollectibleSpawnSystem] Spawn into slot %d failed: %v", i, err)
		}
		return
	}
}

// Sweep destroys the bodies of picked-up snowballs and frees their slots. It
// must run outside the physics step.
func (s *CollectibleSpawnSystem) Sweep() {
	for _, id := range ecs.GetEntitiesWith1[*components.CollectibleComponent](s.em) {
		cc, _ := ecs.GetComponent[*components.CollectibleComponent](s.em, id)
		if !cc.ToCollect || cc.Collected {
			continue
		}
		if err := s.factory.DestroyEntityBody(id); err != nil {
			log.Printf("[CollectibleSpawnSystem] Sweep of %d failed: %v", id, err)
			continue
		}
		cc.Collected = true
		if cc.Slot >= 0 && cc.Slot < len(s.slots) && s.slots[cc.Slot] == id {
			s.slots[cc.Slot] = 0
		}
		s.em.DestroyEntity(id)
	}
	s.em.RemoveMarkedEntities()
}

// Slots returns the slot array; 0 marks an empty slot.
func (s *CollectibleSpawnSystem) Slots() []ecs.EntityID {
	return s.slots
}

// QueueLen returns how many points remain before the next reshuffle.
func (s *CollectibleSpawnSystem) QueueLen() int {
	return len(s.queue)
}
