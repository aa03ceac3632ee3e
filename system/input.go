package system

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/parameter"
)

// InputSystem translates the frame-latched input state into player
// acceleration, boost, jumps, and passthrough toggles. It is the only
// writer of the player's intent; physics happens downstream.
type InputSystem struct {
	world     *engine.World
	input     *engine.InputResource
	timeRes   *engine.TimeResource
	stateRes  *engine.GameStateResource
	eqRes     *engine.EventQueueResource
	scheduler *engine.WorkScheduler

	playerQuery *engine.Query

	// onRestart rebuilds the session; injected by the frame loop owner
	onRestart func()

	// Jump gate, reopened by scheduled work after the cooldown
	canJump bool

	// Boost edge tracking for start/end events
	boosting bool

	// Movement cadence accumulator
	sinceMoveTick time.Duration
}

func NewInputSystem(world *engine.World, onRestart func()) *InputSystem {
	return &InputSystem{
		world:     world,
		input:     engine.MustGetResource[*engine.InputResource](world.Resources),
		timeRes:   engine.MustGetResource[*engine.TimeResource](world.Resources),
		stateRes:  engine.MustGetResource[*engine.GameStateResource](world.Resources),
		eqRes:     engine.MustGetResource[*engine.EventQueueResource](world.Resources),
		scheduler: engine.MustGetResource[*engine.SchedulerResource](world.Resources).Scheduler,
		playerQuery: world.DefineQuery(
			world.Players, world.Positions, world.Velocities,
		),
		onRestart: onRestart,
		canJump:   true,
	}
}

func (s *InputSystem) Name() string { return "input" }

func (s *InputSystem) Priority() int { return parameter.PriorityInput }

// ResetJumpGate reopens the jump gate. Called on restart, after the
// scheduler has been flushed.
func (s *InputSystem) ResetJumpGate() {
	s.canJump = true
}

func (s *InputSystem) Update(dt time.Duration) {
	defer s.input.ClearOneShot()

	// Passthrough toggles work in every phase
	if s.input.CameraToggle {
		s.emit(event.EventCameraToggle, nil)
	}
	if s.input.MuteToggle {
		s.emit(event.EventMuteToggle, nil)
	}

	if s.input.Restart {
		if s.onRestart != nil {
			s.onRestart()
		}
		return
	}

	state := s.stateRes.State
	if state.Phase() != core.PhasePlaying {
		s.endBoost(state)
		return
	}

	players := s.playerQuery.Entities()
	if len(players) == 0 {
		return
	}
	player := players[0]

	pos, _ := s.world.Positions.Get(player)
	vel, _ := s.world.Velocities.Get(player)
	dtSec := dt.Seconds()

	// Acceleration from movement intent, normalized so diagonals are not
	// faster than cardinal movement
	ax, az := s.input.MoveX, s.input.MoveZ
	if mag := math.Hypot(ax, az); mag > 1 {
		ax /= mag
		az /= mag
	}
	accel := parameter.PlayerAccel

	if s.world.SpeedBoosts.Has(player) {
		accel *= parameter.SpeedBoostAccelMultiplier
	}

	// Boost drains energy while held; it cuts out at the energy floor
	if s.input.Boost {
		drained := state.DrainEnergy(parameter.BoostDrainPerSecond * dtSec)
		if drained > 0 {
			accel *= parameter.BoostAccelMultiplier
			s.startBoost(state)
		} else {
			s.endBoost(state)
		}
	} else {
		s.endBoost(state)
		state.RegenEnergy(parameter.EnergyRegenPerSecond * dtSec)
	}

	vel.X += ax * accel * dtSec
	vel.Z += az * accel * dtSec

	// Jump: gate, ground contact, and energy must all allow it
	if s.input.Jump && s.canJump && pos.Y <= 0 {
		if state.SpendEnergy(parameter.JumpEnergyCost) {
			vel.Y = parameter.JumpImpulse
			s.canJump = false
			runAt := s.timeRes.GameTime.Add(parameter.JumpCooldown)
			s.scheduler.Schedule(player, runAt, func() {
				s.canJump = true
			})
			s.emit(event.EventJump, nil)
		}
	}

	s.world.Velocities.Set(player, vel)

	// Movement cadence for footstep-style feedback
	speed := math.Hypot(vel.X, vel.Z)
	if speed >= parameter.MoveTickMinSpeed {
		s.sinceMoveTick += dt
		if s.sinceMoveTick >= parameter.MoveTickInterval {
			s.sinceMoveTick = 0
			s.emit(event.EventMoveTick, nil)
		}
	} else {
		s.sinceMoveTick = 0
	}
}

func (s *InputSystem) startBoost(state *engine.GameState) {
	if !s.boosting {
		s.boosting = true
		state.SetBoostActive(true)
		s.emit(event.EventBoostStart, nil)
	}
}

func (s *InputSystem) endBoost(state *engine.GameState) {
	if s.boosting {
		s.boosting = false
		state.SetBoostActive(false)
		s.emit(event.EventBoostEnd, nil)
	}
}

func (s *InputSystem) emit(t event.EventType, payload any) {
	s.eqRes.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   s.timeRes.FrameNumber,
	})
}
