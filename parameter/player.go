package parameter

import "time"

// Player Body
const (
	// PlayerRadius is the player's circular footprint in world units
	PlayerRadius = 0.45

	// PlayerAccel is ground acceleration applied by movement intents (units/sec²)
	PlayerAccel = 40.0

	// DampingRate is the exponential velocity damping coefficient (1/sec).
	// Velocity scales by exp(-DampingRate*dt) each frame, frame-rate independent.
	DampingRate = 6.0

	// Gravity is downward acceleration for airborne entities and particles (units/sec²)
	Gravity = 25.0
)

// Player Vitals
const (
	// MaxHealth is the health ceiling; goal arrival heals toward it
	MaxHealth = 100

	// MaxEnergy is the energy ceiling; boost drains it, idling regenerates it
	MaxEnergy = 100.0

	// EnergyRegenPerSecond is passive energy recovery while not boosting
	EnergyRegenPerSecond = 8.0

	// BoostDrainPerSecond is energy cost while the boost intent is held
	BoostDrainPerSecond = 20.0

	// BoostAccelMultiplier scales movement acceleration while boosting
	BoostAccelMultiplier = 1.8
)

// Jump
const (
	// JumpImpulse is the vertical velocity applied on jump (units/sec)
	JumpImpulse = 9.0

	// JumpCooldown is the reuse delay, modeled as cancellable scheduled work
	// keyed to the player entity so a level reset invalidates it
	JumpCooldown = 800 * time.Millisecond

	// JumpEnergyCost is the flat energy price of a jump
	JumpEnergyCost = 5.0
)

// Presentation cues
const (
	// MoveTickInterval is the cadence of the movement audio tick event
	// while the player is moving above MoveTickMinSpeed
	MoveTickInterval = 300 * time.Millisecond

	// MoveTickMinSpeed is the planar speed below which no tick is emitted
	MoveTickMinSpeed = 1.0
)
