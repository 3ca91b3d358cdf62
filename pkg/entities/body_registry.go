package entities

import (
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
)

// BodyRegistry maps physics bodies back to the entities that own them. The
// contact system resolves both sides of every contact through it.
type BodyRegistry struct {
	entities map[physics.BodyID]ecs.EntityID
}

// NewBodyRegistry returns an empty registry.
func NewBodyRegistry() *BodyRegistry {
	return &BodyRegistry{entities: make(map[physics.BodyID]ecs.EntityID)}
}

// Register records that body belongs to entity.
func (r *BodyRegistry) Register(body physics.BodyID, entity ecs.EntityID) {
	r.entities[body] = entity
}

// Unregister forgets a body.
func (r *BodyRegistry) Unregister(body physics.BodyID) {
	delete(r.entities, body)
}

// Lookup returns the entity owning body.
func (r *BodyRegistry) Lookup(body physics.BodyID) (ecs.EntityID, bool) {
	id, ok := r.entities[body]
	return id, ok
}

// Len returns the number of registered bodies.
func (r *BodyRegistry) Len() int {
	return len(r.entities)
}
