package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
)

func TestParticleAgesAndReturnsToPool(t *testing.T) {
	r := newRig(t)
	ps := NewParticleSystem(r.world)

	pe, ok := r.pool.Spawn(core.Vec3{X: 5, Z: 5}, core.Vec3{}, 3*testDt)
	if !ok {
		t.Fatal("pool spawn failed")
	}
	free := r.pool.FreeCount()

	ps.Update(testDt)
	ps.Update(testDt)
	p, _ := r.world.Particles.Get(pe)
	if !p.Active {
		t.Fatal("particle released before its lifetime")
	}

	ps.Update(testDt)
	p, _ = r.world.Particles.Get(pe)
	if p.Active {
		t.Error("particle still active past its lifetime")
	}
	if r.pool.FreeCount() != free+1 {
		t.Errorf("free slots = %d, want %d", r.pool.FreeCount(), free+1)
	}
}

func TestParticleRunsEveryPhase(t *testing.T) {
	r := newRig(t)
	ps := NewParticleSystem(r.world)

	pe, ok := r.pool.Spawn(core.Vec3{X: 5, Z: 5}, core.Vec3{}, testDt)
	if !ok {
		t.Fatal("pool spawn failed")
	}

	r.state.SetPhase(core.PhaseTransitioning)
	ps.Update(2 * testDt)

	if p, _ := r.world.Particles.Get(pe); p.Active {
		t.Error("particle aging stopped outside PhasePlaying")
	}
}

func TestAnimationPhaseWraps(t *testing.T) {
	r := newRig(t)
	as := NewAnimationSystem(r.world)

	e := r.world.CreateEntity()
	r.world.Animations.Set(e, component.AnimationComponent{Speed: 2, Phase: 0.9})

	as.Update(100 * time.Millisecond) // +0.2 wraps past 1.0

	a, _ := r.world.Animations.Get(e)
	if a.Phase < 0 || a.Phase >= 1 {
		t.Errorf("phase = %v, want within [0,1)", a.Phase)
	}
	const want = 0.1
	if a.Phase < want-1e-9 || a.Phase > want+1e-9 {
		t.Errorf("phase = %v, want %v", a.Phase, want)
	}
}
