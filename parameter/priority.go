package parameter

// System priorities. Lower runs first; the pipeline order is fixed and is
// the only concurrency control in the simulation (strictly sequential).
const (
	PriorityInput       = 100
	PriorityAI          = 200
	PriorityMovement    = 300
	PriorityCollision   = 400
	PriorityEffectTimer = 500
	PriorityExploration = 600

	// Presentation-adjacent systems run after gameplay resolution and in
	// every phase, not just PhasePlaying.
	PriorityParticle  = 700
	PriorityAnimation = 800
)
