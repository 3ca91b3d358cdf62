// Package types defines the shared base types of the simulation: collision
// categories and filters, movement states, enemy kinds and directions.
package types

import "strings"

// CollisionCategory is a single-bit collision class. Categories combine with |
// to form masks.
type CollisionCategory uint

const (
	CategoryGround           CollisionCategory = 1 << iota // ground tiles
	CategoryPlayer                                         // player, normal mode
	CategoryCollectible                                    // snowball waiting on the ground
	CategoryDestroyed                                      // collected snowball awaiting removal
	CategoryObject                                         // generic props
	CategoryEnemy                                          // bears, chickens
	CategoryPlayerInvincible                               // player inside the invincibility window
	CategoryGoal                                           // Bob
	CategoryPlayerCarrying                                 // player holding a snowball
	CategoryEnemyBoundary                                  // invisible walls that turn enemies around

	// CategoryNone is the empty mask.
	CategoryNone CollisionCategory = 0
	// CategoryAll matches every category; tiles use it as their mask.
	CategoryAll CollisionCategory = ^CollisionCategory(0)
)

var categoryNames = []struct {
	cat  CollisionCategory
	name string
}{
	{CategoryGround, "ground"},
	{CategoryPlayer, "player"},
	{CategoryCollectible, "collectible"},
	{CategoryDestroyed, "destroyed"},
	{CategoryObject, "object"},
	{CategoryEnemy, "enemy"},
	{CategoryPlayerInvincible, "player-invincible"},
	{CategoryGoal, "goal"},
	{CategoryPlayerCarrying, "player-carrying"},
	{CategoryEnemyBoundary, "enemy-boundary"},
}

// Has reports whether every bit of other is set in c.
func (c CollisionCategory) Has(other CollisionCategory) bool {
	return other != 0 && c&other == other
}

// String renders the set bits joined by "|", e.g. "ground|enemy".
func (c CollisionCategory) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryAll:
		return "all"
	}
	parts := make([]string, 0, 2)
	for _, n := range categoryNames {
		if c&n.cat != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Filter pairs a body's own category with the mask of categories it may touch.
type Filter struct {
	Category CollisionCategory
	Mask     CollisionCategory
}

// ShouldCollide reports whether two filters let their bodies interact: each
// mask must include the other's category.
func (f Filter) ShouldCollide(other Filter) bool {
	return f.Mask&other.Category != 0 && other.Mask&f.Category != 0
}

// Filter presets, one per entity mode. The player always holds exactly one of
// the three player presets.
var (
	PlayerNormalFilter = Filter{
		Category: CategoryPlayer,
		Mask:     CategoryGround | CategoryCollectible | CategoryObject | CategoryEnemy,
	}
	PlayerInvincibleFilter = Filter{
		Category: CategoryPlayerInvincible,
		Mask:     CategoryGround,
	}
	PlayerCarryingFilter = Filter{
		Category: CategoryPlayerCarrying,
		Mask:     CategoryGround | CategoryGoal | CategoryEnemy,
	}
	EnemyFilter = Filter{
		Category: CategoryEnemy,
		Mask:     CategoryGround | CategoryObject | CategoryPlayer | CategoryPlayerCarrying | CategoryEnemyBoundary,
	}
	GoalFilter = Filter{
		Category: CategoryGoal,
		Mask:     CategoryPlayer | CategoryPlayerCarrying,
	}
	CollectibleFilter = Filter{
		Category: CategoryCollectible,
		Mask:     CategoryGround | CategoryPlayer | CategoryPlayerInvincible,
	}
	DestroyedFilter = Filter{
		Category: CategoryDestroyed,
		Mask:     CategoryNone,
	}
	GroundFilter = Filter{
		Category: CategoryGround,
		Mask:     CategoryAll,
	}
	EnemyBoundaryFilter = Filter{
		Category: CategoryEnemyBoundary,
		Mask:     CategoryAll,
	}
)

// IsPlayerCategory reports whether c is one of the three player modes.
func IsPlayerCategory(c CollisionCategory) bool {
	return c == CategoryPlayer || c == CategoryPlayerInvincible || c == CategoryPlayerCarrying
}
