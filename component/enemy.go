package component

// EnemyKind selects an enemy archetype.
type EnemyKind uint8

const (
	// EnemyWanderer patrols random routes and gives chase only at close range.
	EnemyWanderer EnemyKind = iota
	// EnemyChaser moves faster and repaths more aggressively while chasing.
	EnemyChaser
)

// String returns the archetype name for logging.
func (k EnemyKind) String() string {
	switch k {
	case EnemyWanderer:
		return "wanderer"
	case EnemyChaser:
		return "chaser"
	default:
		return "unknown"
	}
}

// EnemyComponent marks a hostile entity.
type EnemyComponent struct {
	Kind EnemyKind
	// Speed is the base patrol speed; chasing applies a multiplier on top.
	Speed float64
}
