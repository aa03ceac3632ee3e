package system

import (
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/parameter"
)

// EffectTimerSystem expires status effects. Each timer entity carries a
// deadline in game time; once passed, the status component is stripped
// from the target and the timer entity is destroyed. Timers whose target
// died expire the same way without touching anything.
type EffectTimerSystem struct {
	world   *engine.World
	timeRes *engine.TimeResource

	timerQuery *engine.Query
}

func NewEffectTimerSystem(world *engine.World) *EffectTimerSystem {
	return &EffectTimerSystem{
		world:      world,
		timeRes:    engine.MustGetResource[*engine.TimeResource](world.Resources),
		timerQuery: world.DefineQuery(world.EffectTimers),
	}
}

func (s *EffectTimerSystem) Name() string { return "effectTimer" }

func (s *EffectTimerSystem) Priority() int { return parameter.PriorityEffectTimer }

func (s *EffectTimerSystem) Update(dt time.Duration) {
	now := s.timeRes.GameTime

	for _, e := range s.timerQuery.Entities() {
		timer, ok := s.world.EffectTimers.Get(e)
		if !ok || timer.ExpiresAt.After(now) {
			continue
		}

		switch timer.Kind {
		case component.StatusSpeedBoost:
			s.world.SpeedBoosts.Remove(timer.Target)
		case component.StatusShield:
			s.world.Shields.Remove(timer.Target)
		case component.StatusScoreMultiplier:
			s.world.Multipliers.Remove(timer.Target)
		}
		s.world.DestroyEntity(e)
	}
}
