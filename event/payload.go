package event

import (
	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
)

// CollectPayload reports a collectible pickup and the score it awarded
// after multiplier application.
type CollectPayload struct {
	Entity   core.Entity
	Position core.Vec3
	Awarded  int
}

// PowerUpPayload reports a consumed power-up.
type PowerUpPayload struct {
	Entity   core.Entity
	Kind     component.PowerUpKind
	Position core.Vec3
}

// DamagePayload reports contact damage dealt to the player.
type DamagePayload struct {
	Source core.Entity
	Amount int
	Fatal  bool
}

// ScrapePayload reports a hard wall impact.
type ScrapePayload struct {
	Entity   core.Entity
	Speed    float64
	Position core.Vec3
}

// ScreenShakePayload requests a camera shake of the given strength.
type ScreenShakePayload struct {
	Magnitude float64
}

// EnemyAlertPayload reports an enemy switching from patrol to chase.
type EnemyAlertPayload struct {
	Entity   core.Entity
	Position core.Vec3
}

// LevelUpPayload reports goal arrival and the resulting level.
type LevelUpPayload struct {
	Level int
	Score int
}

// LevelReadyPayload reports a freshly built level.
type LevelReadyPayload struct {
	Level  int
	Width  int
	Height int
}
