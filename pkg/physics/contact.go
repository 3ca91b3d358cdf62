package physics

// Contact is a pair of bodies whose fixtures touch. The order of A and B
// carries no meaning.
type Contact struct {
	A, B *Body
}

// Other returns the body in the contact that is not b, or nil when b is not
// part of it.
func (c Contact) Other(b *Body) *Body {
	switch b {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return nil
}

// ContactListener receives contact events from inside World.Step. Callbacks
// run synchronously while the world is locked, so they must not create or
// destroy bodies.
type ContactListener interface {
	BeginContact(c Contact)
	EndContact(c Contact)
	PreSolve(c Contact)
	PostSolve(c Contact)
}

// NopContactListener ignores every event. Embed it to implement only the
// callbacks you need.
type NopContactListener struct{}

func (NopContactListener) BeginContact(Contact) {}
func (NopContactListener) EndContact(Contact)   {}
func (NopContactListener) PreSolve(Contact)     {}
func (NopContactListener) PostSolve(Contact)    {}
