package parameter

import "time"

// Collectibles
const (
	// CollectibleValue is the base score of one collectible before the level
	// and multiplier scaling: award = value × level × multiplier
	CollectibleValue = 25

	// CollectibleEnergyRefund is energy returned per collectible
	CollectibleEnergyRefund = 10.0

	// CollectibleRadius is the pickup distance in world units
	CollectibleRadius = 1.0
)

// Power-Ups
const (
	// PowerUpRadius is the pickup distance in world units
	PowerUpRadius = 1.0

	// SpeedBoostDuration is how long the speed status persists
	SpeedBoostDuration = 6 * time.Second

	// ShieldDuration is how long the invulnerability status persists
	ShieldDuration = 8 * time.Second

	// MultiplierDuration is how long the score multiplier persists
	MultiplierDuration = 10 * time.Second

	// ScoreMultiplierValue is the fixed multiplier granted by the pickup
	ScoreMultiplierValue = 3

	// SpeedBoostAccelMultiplier scales movement acceleration while the
	// SpeedBoost status is held
	SpeedBoostAccelMultiplier = 1.6
)

// Goal
const (
	// GoalRadius is the arrival distance in world units
	GoalRadius = 1.2

	// GoalScoreBonus is awarded on arrival, scaled by the finished level
	GoalScoreBonus = 100

	// GoalHealAmount is health restored on arrival
	GoalHealAmount = 25
)
