package engine

import (
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/parameter"
)

// ParticlePool owns a fixed set of pre-created particle entities. Slots
// are recycled; spawn requests beyond capacity are silently dropped so
// effect bursts can never grow the entity population.
//
// Pool entities live for the whole session and survive level rebuilds.
type ParticlePool struct {
	world *World
	free  []core.Entity
}

// NewParticlePool creates the pool's entities up front, all inactive.
func NewParticlePool(w *World) *ParticlePool {
	p := &ParticlePool{
		world: w,
		free:  make([]core.Entity, 0, parameter.ParticlePoolCapacity),
	}
	for i := 0; i < parameter.ParticlePoolCapacity; i++ {
		e := w.CreateEntity()
		w.Particles.Set(e, component.ParticleComponent{})
		w.Positions.Set(e, component.PositionComponent{})
		w.Velocities.Set(e, component.VelocityComponent{})
		p.free = append(p.free, e)
	}
	return p
}

// Spawn activates one pooled particle. Returns false when the pool is
// exhausted; the request is dropped, never queued.
func (p *ParticlePool) Spawn(pos, vel core.Vec3, lifetime time.Duration) (core.Entity, bool) {
	if len(p.free) == 0 {
		return core.EntityNone, false
	}
	e := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	p.world.Positions.Set(e, component.PositionComponent{Vec3: pos})
	p.world.Velocities.Set(e, component.VelocityComponent{Vec3: vel})
	p.world.Particles.Set(e, component.ParticleComponent{
		Active:  true,
		Life:    lifetime,
		MaxLife: lifetime,
	})
	return e, true
}

// Release returns an expired particle slot to the free list. The entity
// keeps its components; only Active is cleared.
func (p *ParticlePool) Release(e core.Entity) {
	if pc, ok := p.world.Particles.Get(e); ok && pc.Active {
		pc.Active = false
		pc.Life = 0
		p.world.Particles.Set(e, pc)
		p.free = append(p.free, e)
	}
}

// Reset deactivates every live particle, returning all slots.
func (p *ParticlePool) Reset() {
	for _, e := range p.world.Particles.All() {
		if pc, ok := p.world.Particles.Get(e); ok && pc.Active {
			pc.Active = false
			pc.Life = 0
			p.world.Particles.Set(e, pc)
			p.free = append(p.free, e)
		}
	}
}

// FreeCount returns the number of idle slots.
func (p *ParticlePool) FreeCount() int {
	return len(p.free)
}
