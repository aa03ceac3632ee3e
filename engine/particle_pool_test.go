package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/parameter"
)

func TestParticlePoolExhaustionDropsSilently(t *testing.T) {
	w := NewWorld()
	p := NewParticlePool(w)

	if p.FreeCount() != parameter.ParticlePoolCapacity {
		t.Fatalf("fresh pool free = %d, want %d", p.FreeCount(), parameter.ParticlePoolCapacity)
	}

	for i := 0; i < parameter.ParticlePoolCapacity; i++ {
		if _, ok := p.Spawn(core.Vec3{}, core.Vec3{}, time.Second); !ok {
			t.Fatalf("spawn %d failed with slots free", i)
		}
	}

	// Over capacity: dropped, not queued, and no new entities created
	before := w.EntityCount()
	if _, ok := p.Spawn(core.Vec3{}, core.Vec3{}, time.Second); ok {
		t.Error("spawn succeeded on exhausted pool")
	}
	if w.EntityCount() != before {
		t.Error("exhausted spawn created an entity")
	}
}

func TestParticlePoolReleaseRecycles(t *testing.T) {
	w := NewWorld()
	p := NewParticlePool(w)

	e, ok := p.Spawn(core.Vec3{X: 1}, core.Vec3{}, time.Second)
	if !ok {
		t.Fatal("spawn failed")
	}
	if p.FreeCount() != parameter.ParticlePoolCapacity-1 {
		t.Errorf("free = %d after spawn", p.FreeCount())
	}

	p.Release(e)
	if p.FreeCount() != parameter.ParticlePoolCapacity {
		t.Errorf("free = %d after release, want full", p.FreeCount())
	}

	// Double release must not duplicate the slot
	p.Release(e)
	if p.FreeCount() != parameter.ParticlePoolCapacity {
		t.Errorf("double release grew free list to %d", p.FreeCount())
	}

	pc, _ := w.Particles.Get(e)
	if pc.Active {
		t.Error("released particle still active")
	}
}

func TestParticlePoolResetReturnsAllSlots(t *testing.T) {
	w := NewWorld()
	p := NewParticlePool(w)

	for i := 0; i < 10; i++ {
		p.Spawn(core.Vec3{}, core.Vec3{}, time.Second)
	}
	p.Reset()
	if p.FreeCount() != parameter.ParticlePoolCapacity {
		t.Errorf("free = %d after Reset, want %d", p.FreeCount(), parameter.ParticlePoolCapacity)
	}
}
