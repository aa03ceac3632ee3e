package system

import (
	"time"

	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/parameter"
)

// ParticleSystem ages live particles and returns expired slots to the
// pool. Runs in every phase so bursts finish over transition screens.
type ParticleSystem struct {
	world *engine.World
	pool  *engine.ParticlePool

	particleQuery *engine.Query
}

func NewParticleSystem(world *engine.World) *ParticleSystem {
	return &ParticleSystem{
		world:         world,
		pool:          engine.MustGetResource[*engine.ParticlePoolResource](world.Resources).Pool,
		particleQuery: world.DefineQuery(world.Particles),
	}
}

func (s *ParticleSystem) Name() string { return "particle" }

func (s *ParticleSystem) Priority() int { return parameter.PriorityParticle }

func (s *ParticleSystem) Update(dt time.Duration) {
	for _, e := range s.particleQuery.Entities() {
		p, ok := s.world.Particles.Get(e)
		if !ok || !p.Active {
			continue
		}
		p.Life -= dt
		if p.Life <= 0 {
			s.pool.Release(e)
			continue
		}
		s.world.Particles.Set(e, p)
	}
}
