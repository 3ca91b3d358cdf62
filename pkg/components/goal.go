package components

// GoalComponent marks Bob. Bob's health lives in the session, not here.
type GoalComponent struct{}
