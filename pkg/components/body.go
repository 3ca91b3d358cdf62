// Package components defines the data attached to entities. Components hold
// state only; systems own the behavior.
package components

import "github.com/gonewx/bobmelting/pkg/physics"

// BodyComponent links an entity to its rigid body. Every entity produced by
// the body factory carries one.
type BodyComponent struct {
	Body *physics.Body
}
