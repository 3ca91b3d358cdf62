package systems

import (
	"errors"
	"fmt"

	"github.com/gonewx/bobmelting/pkg/components"
	"github.com/gonewx/bobmelting/pkg/ecs"
	"github.com/gonewx/bobmelting/pkg/physics"
)

// ErrBodyNotRealized is returned when an entity reaches an update path
// without a live body.
var ErrBodyNotRealized = errors.New("entity has no realized body")

// bodyOf returns the live body of an entity.
func bodyOf(em *ecs.EntityManager, id ecs.EntityID) (*physics.Body, error) {
	bc, ok := ecs.GetComponent[*components.BodyComponent](em, id)
	if !ok || bc.Body == nil || bc.Body.Destroyed() {
		return nil, fmt.Errorf("entity %d: %w", id, ErrBodyNotRealized)
	}
	return bc.Body, nil
}
