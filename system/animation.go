package system

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/parameter"
)

// AnimationSystem advances looping visual phases. Runs in every phase so
// idle screens still pulse.
type AnimationSystem struct {
	world *engine.World

	animationQuery *engine.Query
}

func NewAnimationSystem(world *engine.World) *AnimationSystem {
	return &AnimationSystem{
		world:          world,
		animationQuery: world.DefineQuery(world.Animations),
	}
}

func (s *AnimationSystem) Name() string { return "animation" }

func (s *AnimationSystem) Priority() int { return parameter.PriorityAnimation }

func (s *AnimationSystem) Update(dt time.Duration) {
	dtSec := dt.Seconds()
	for _, e := range s.animationQuery.Entities() {
		a, ok := s.world.Animations.Get(e)
		if !ok {
			continue
		}
		a.Phase += a.Speed * dtSec
		a.Phase -= math.Floor(a.Phase)
		s.world.Animations.Set(e, a)
	}
}
