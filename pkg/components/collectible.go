package components

// CollectibleComponent marks a snowball. Slot is its index in the session's
// slot array, which is cleared when the snowball is swept.
type CollectibleComponent struct {
	Slot      int
	ToCollect bool // set by the contact that picked it up
	Collected bool // body destroyed
}
