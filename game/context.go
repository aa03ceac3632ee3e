// Package game wires the world, resources, systems, and level lifecycle
// into a frame-steppable simulation. Frontends call Step once per frame
// and drain events; everything else happens inside.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/neon-maze/ai"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/level"
	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/parameter"
	"github.com/lixenwraith/neon-maze/system"
)

// HUDSnapshot is the read-only per-frame view the presentation layer
// draws: scalar state plus the player's grid cell and live status flags.
type HUDSnapshot struct {
	engine.StateSnapshot

	Elapsed    time.Duration
	PlayerCell maze.Cell
	SpeedBoost bool
	Shield     bool
	Multiplier bool
}

// Context owns one simulation session.
type Context struct {
	world    *engine.World
	pipeline *engine.Pipeline
	clock    *engine.PausableClock

	rng        *rand.Rand
	levels     *level.Manager
	controller *ai.Controller

	input     *engine.InputResource
	timeRes   *engine.TimeResource
	state     *engine.GameState
	queue     *event.EventQueue
	scheduler *engine.WorkScheduler
	pool      *engine.ParticlePool

	inputSystem *system.InputSystem

	lastStep time.Time
	started  time.Time
	frame    int64
}

// NewContext builds a fully wired session. The first level is not built
// yet; call Start.
func NewContext(cfg level.Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx := &Context{
		world:     engine.NewWorld(),
		pipeline:  engine.NewPipeline(),
		clock:     engine.NewPausableClock(),
		rng:       rand.New(rand.NewSource(seed)),
		input:     &engine.InputResource{},
		timeRes:   &engine.TimeResource{},
		state:     engine.NewGameState(),
		queue:     event.NewEventQueue(),
		scheduler: engine.NewWorkScheduler(),
	}

	res := ctx.world.Resources
	engine.AddResource(res, ctx.timeRes)
	engine.AddResource(res, ctx.input)
	engine.AddResource(res, &engine.GameStateResource{State: ctx.state})
	engine.AddResource(res, &engine.EventQueueResource{Queue: ctx.queue})
	engine.AddResource(res, &engine.SchedulerResource{Scheduler: ctx.scheduler})
	engine.AddResource(res, &engine.MazeResource{})

	ctx.pool = engine.NewParticlePool(ctx.world)
	engine.AddResource(res, &engine.ParticlePoolResource{Pool: ctx.pool})

	ctx.controller = ai.NewController(ctx.world, ctx.rng)
	ctx.levels = level.NewManager(ctx.world, cfg, ctx.rng, ctx.controller)

	ctx.timeRes.GameTime = ctx.clock.Now()
	ctx.timeRes.RealTime = ctx.clock.RealTime()
	ctx.lastStep = ctx.timeRes.GameTime

	ctx.inputSystem = system.NewInputSystem(ctx.world, ctx.Restart)
	ctx.pipeline.Register(ctx.inputSystem)
	ctx.pipeline.Register(system.NewAISystem(ctx.world, ctx.controller))
	ctx.pipeline.Register(system.NewMovementSystem(ctx.world))
	ctx.pipeline.Register(system.NewCollisionSystem(ctx.world, ctx.rng, ctx.advanceLevel))
	ctx.pipeline.Register(system.NewEffectTimerSystem(ctx.world))
	ctx.pipeline.Register(system.NewExplorationSystem(ctx.world))
	ctx.pipeline.Register(system.NewParticleSystem(ctx.world))
	ctx.pipeline.Register(system.NewAnimationSystem(ctx.world))

	return ctx, nil
}

// Start builds the first level and enters play.
func (c *Context) Start() error {
	if err := c.levels.Build(c.state.Level()); err != nil {
		return err
	}
	c.started = c.clock.Now()
	c.state.SetPhase(core.PhasePlaying)
	return nil
}

// Step advances the simulation one frame. The elapsed game time since the
// last step is clamped so a hitch never destabilizes integration. While
// paused, game time is frozen and dt collapses to zero.
func (c *Context) Step() {
	now := c.clock.Now()
	dt := now.Sub(c.lastStep)
	c.lastStep = now

	if dt < 0 {
		dt = 0
	}
	if dt > parameter.FrameDeltaMax {
		dt = parameter.FrameDeltaMax
	}

	c.frame++
	c.timeRes.GameTime = now
	c.timeRes.RealTime = c.clock.RealTime()
	c.timeRes.DeltaTime = dt
	c.timeRes.FrameNumber = c.frame

	c.scheduler.Tick(now)
	c.pipeline.Update(dt)
}

// DrainEvents returns all events emitted since the last drain, in order.
func (c *Context) DrainEvents() []event.GameEvent {
	return c.queue.Consume()
}

// Snapshot returns the player-visible state for rendering.
func (c *Context) Snapshot() engine.StateSnapshot {
	return c.state.Snapshot()
}

// HUD returns the full per-frame presentation view. Elapsed runs on the
// game clock, so pauses do not count.
func (c *Context) HUD() HUDSnapshot {
	snap := HUDSnapshot{StateSnapshot: c.state.Snapshot()}
	if !c.started.IsZero() {
		snap.Elapsed = c.clock.Now().Sub(c.started)
	}

	player := c.levels.Player()
	if player == core.EntityNone {
		return snap
	}
	if pos, ok := c.world.Positions.Get(player); ok {
		snap.PlayerCell = maze.WorldToGrid(pos.Vec3)
	}
	snap.SpeedBoost = c.world.SpeedBoosts.Has(player)
	snap.Shield = c.world.Shields.Has(player)
	snap.Multiplier = c.world.Multipliers.Has(player)
	return snap
}

// Restart tears the session back to level one: pending work is flushed,
// live effects fall with the level teardown, and the score resets.
func (c *Context) Restart() {
	c.scheduler.CancelAll()
	c.inputSystem.ResetJumpGate()
	c.pool.Reset()

	c.state.Reset()
	if err := c.levels.Build(1); err != nil {
		c.state.SetPhase(core.PhaseGameOver)
		return
	}
	c.started = c.clock.Now()
	c.state.SetPhase(core.PhasePlaying)
}

// advanceLevel runs as scheduled work after the transition delay.
func (c *Context) advanceLevel() {
	c.state.SetPhase(core.PhaseLoading)
	if err := c.levels.Build(c.state.Level()); err != nil {
		c.state.SetPhase(core.PhaseGameOver)
		return
	}
	c.state.SetPhase(core.PhasePlaying)
}

// World exposes the ECS for frontends and tests.
func (c *Context) World() *engine.World {
	return c.world
}

// Input returns the frame-latched input state written by the frontend.
func (c *Context) Input() *engine.InputResource {
	return c.input
}

// State returns the session game state.
func (c *Context) State() *engine.GameState {
	return c.state
}

// Player returns the player entity.
func (c *Context) Player() core.Entity {
	return c.levels.Player()
}

// Pause freezes game time; scheduled work and effects freeze with it.
func (c *Context) Pause() {
	c.clock.Pause()
}

// Resume continues game time.
func (c *Context) Resume() {
	c.clock.Resume()
}

// Paused reports the pause state.
func (c *Context) Paused() bool {
	return c.clock.IsPaused()
}
