package component

import "time"

// ParticleComponent is the per-particle state of a pooled visual effect
// entity. Pool entities exist for the whole session; Active distinguishes
// live particles from idle slots.
type ParticleComponent struct {
	Active  bool
	Life    time.Duration
	MaxLife time.Duration
}
