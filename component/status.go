package component

// StatusKind identifies a timed status effect category.
type StatusKind uint8

const (
	StatusSpeedBoost StatusKind = iota
	StatusShield
	StatusScoreMultiplier
)

// String returns the status name for logging and HUD display.
func (k StatusKind) String() string {
	switch k {
	case StatusSpeedBoost:
		return "speedBoost"
	case StatusShield:
		return "shield"
	case StatusScoreMultiplier:
		return "scoreMultiplier"
	default:
		return "unknown"
	}
}

// SpeedBoostComponent marks an entity with an active movement boost.
type SpeedBoostComponent struct{}

// ShieldComponent marks an entity as immune to contact damage.
type ShieldComponent struct{}

// ScoreMultiplierComponent scales score awarded to its holder.
type ScoreMultiplierComponent struct {
	Value int
}
