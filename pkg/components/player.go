package components

// PlayerComponent is the player's sub-state: the invincibility window and
// whether a snowball is being carried.
type PlayerComponent struct {
	Invincible      bool
	InvincibleTimer float64 // seconds since the last hit
	FlickerTimer    float64 // seconds since the last alpha toggle
	Alpha           float64 // 1 when visible, dimmed while flickering
	Carrying        bool
}
