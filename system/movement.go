package system

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/parameter"
)

// MovementSystem integrates velocity into position. Planar velocity of
// non-particle entities decays exponentially, frame-rate independent, so
// impulses (input, knockback) bleed off instead of persisting; airborne
// entities fall under gravity and clamp to the ground plane.
//
// Gameplay entities freeze outside PhasePlaying; live particles keep
// moving so effect bursts finish over transition screens.
type MovementSystem struct {
	world    *engine.World
	stateRes *engine.GameStateResource

	moverQuery *engine.Query
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{
		world:    world,
		stateRes: engine.MustGetResource[*engine.GameStateResource](world.Resources),
		moverQuery: world.DefineQuery(
			world.Positions, world.Velocities,
		),
	}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

func (s *MovementSystem) Update(dt time.Duration) {
	playing := s.stateRes.State.Phase() == core.PhasePlaying
	dtSec := dt.Seconds()
	damping := math.Exp(-parameter.DampingRate * dtSec)

	for _, e := range s.moverQuery.Entities() {
		particle, isParticle := s.world.Particles.Get(e)
		if isParticle && !particle.Active {
			continue
		}
		if !playing && !isParticle {
			continue
		}

		pos, _ := s.world.Positions.Get(e)
		vel, _ := s.world.Velocities.Get(e)

		if !isParticle {
			vel.X *= damping
			vel.Z *= damping
		}

		// Gravity only acts off the ground plane
		if pos.Y > 0 || vel.Y > 0 {
			vel.Y -= parameter.Gravity * dtSec
		}

		pos.X += vel.X * dtSec
		pos.Y += vel.Y * dtSec
		pos.Z += vel.Z * dtSec

		if pos.Y < 0 {
			pos.Y = 0
			vel.Y = 0
		}

		s.world.Positions.Set(e, pos)
		s.world.Velocities.Set(e, vel)
	}
}
