package component

import (
	"time"

	"github.com/lixenwraith/neon-maze/core"
)

// EffectTimerComponent is a standalone countdown entity tied to a status
// effect on a target. When the deadline passes, the effect is removed from
// the target and the timer entity is destroyed. Destroying the target
// orphans the timer, which expires harmlessly.
type EffectTimerComponent struct {
	Target    core.Entity
	Kind      StatusKind
	ExpiresAt time.Time
}
