package component

import "time"

// PlayerComponent tags the single player-controlled entity.
type PlayerComponent struct{}

// GoalComponent tags the level exit.
type GoalComponent struct{}

// CollectibleComponent tags a score pickup.
type CollectibleComponent struct{}

// TrailComponent is a fading marker dropped behind the moving player,
// culled once its deadline passes.
type TrailComponent struct {
	ExpiresAt time.Time
}
