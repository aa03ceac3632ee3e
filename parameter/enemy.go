package parameter

import "time"

// Enemy Body & Movement
const (
	// EnemyRadius is the circular footprint of every enemy in world units
	EnemyRadius = 0.5

	// WandererSpeed is the base patrol speed of the wanderer kind (units/sec)
	WandererSpeed = 2.4

	// ChaserSpeed is the base patrol speed of the chaser kind (units/sec)
	ChaserSpeed = 3.2

	// WaypointReachDist is the proximity at which the current path waypoint
	// counts as reached and the next one is targeted
	WaypointReachDist = 0.3
)

// Chase Behavior
const (
	// ChaseTriggerRadius starts a chase when the player comes this close.
	// Strictly smaller than PatrolResumeRadius to produce hysteresis.
	ChaseTriggerRadius = 6.0

	// PatrolResumeRadius ends a chase when the player moves this far away
	PatrolResumeRadius = 9.0

	// ChaseSpeedMultiplier scales base speed while chasing
	ChaseSpeedMultiplier = 1.5

	// ChaseRepathInterval bounds pathfinding cost: the path to the player is
	// recomputed on this tick interval, not every frame
	ChaseRepathInterval = 500 * time.Millisecond
)

// Contact Damage
const (
	// ContactRadius is the player/enemy distance that counts as contact
	ContactRadius = 0.9

	// ContactDamage is health subtracted on enemy contact
	ContactDamage = 20

	// ContactKnockback is the symmetric impulse applied along the separating
	// normal to both player and enemy (units/sec)
	ContactKnockback = 8.0

	// PostHitShieldDuration is the short invulnerability window granted after
	// taking contact damage, preventing repeated damage on consecutive frames
	PostHitShieldDuration = 1 * time.Second
)
