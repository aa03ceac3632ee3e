package parameter

import "time"

// Wall Contact
const (
	// WallRestitution scales the reflected velocity component along the
	// contact normal. Below 1 the bounce is inelastic.
	WallRestitution = 0.4

	// ScrapeSpeedThreshold is the impact speed above which a wall contact
	// emits the scrape event and spawns spark particles
	ScrapeSpeedThreshold = 6.0

	// SparkCount is the number of spark particles requested per hard contact
	SparkCount = 6
)

// Particles
const (
	// ParticlePoolCapacity is the fixed number of pre-allocated particle
	// entities. Spawn requests beyond capacity are silently dropped.
	ParticlePoolCapacity = 256

	// SparkLifetime is the lifetime of a spark particle
	SparkLifetime = 600 * time.Millisecond

	// SparkSpread is the random planar velocity spread of spawned sparks
	SparkSpread = 4.0
)

// Trail
const (
	// TrailDropInterval is the cadence of trail markers behind a moving player
	TrailDropInterval = 250 * time.Millisecond

	// TrailLifetime is how long a trail marker lives
	TrailLifetime = 4 * time.Second
)
