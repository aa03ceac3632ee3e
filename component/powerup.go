package component

// PowerUpKind identifies what a power-up pickup grants on contact.
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpShield
	PowerUpMultiplier
	PowerUpEnergy
	powerUpKindCount
)

// PowerUpKindCount is the number of power-up kinds, for random selection.
const PowerUpKindCount = int(powerUpKindCount)

// String returns the power-up name for logging.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpShield:
		return "shield"
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpEnergy:
		return "energy"
	default:
		return "unknown"
	}
}

// PowerUpComponent marks a power-up pickup on the ground.
type PowerUpComponent struct {
	Kind PowerUpKind
}
