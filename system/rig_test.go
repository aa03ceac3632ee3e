package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/maze"
)

const testDt = 16 * time.Millisecond

// rig is a fully wired world on a small fixed arena, for system tests.
type rig struct {
	world     *engine.World
	input     *engine.InputResource
	timeRes   *engine.TimeResource
	state     *engine.GameState
	queue     *event.EventQueue
	scheduler *engine.WorkScheduler
	pool      *engine.ParticlePool
	mazeRes   *engine.MazeResource
	rng       *rand.Rand
	player    core.Entity
}

// arena is a 5x7 open room with a solid border.
func arena(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.FromRunes([]string{
		"#######",
		"#.....#",
		"#.....#",
		"#.....#",
		"#######",
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		world:     engine.NewWorld(),
		input:     &engine.InputResource{},
		timeRes:   &engine.TimeResource{GameTime: time.Now(), RealTime: time.Now()},
		state:     engine.NewGameState(),
		queue:     event.NewEventQueue(),
		scheduler: engine.NewWorkScheduler(),
		rng:       rand.New(rand.NewSource(1)),
	}
	r.mazeRes = &engine.MazeResource{Grid: arena(t)}
	r.mazeRes.ResetVisited()

	res := r.world.Resources
	engine.AddResource(res, r.timeRes)
	engine.AddResource(res, r.input)
	engine.AddResource(res, &engine.GameStateResource{State: r.state})
	engine.AddResource(res, &engine.EventQueueResource{Queue: r.queue})
	engine.AddResource(res, &engine.SchedulerResource{Scheduler: r.scheduler})
	engine.AddResource(res, r.mazeRes)

	r.pool = engine.NewParticlePool(r.world)
	engine.AddResource(res, &engine.ParticlePoolResource{Pool: r.pool})

	r.player = r.world.CreateEntity()
	r.world.Players.Set(r.player, component.PlayerComponent{})
	r.world.Positions.Set(r.player, component.PositionComponent{
		Vec3: maze.GridToWorld(maze.Cell{X: 2, Y: 2}),
	})
	r.world.Velocities.Set(r.player, component.VelocityComponent{})

	r.state.SetPhase(core.PhasePlaying)
	return r
}

// advance moves game time forward, the way the frame loop would.
func (r *rig) advance(d time.Duration) {
	r.timeRes.GameTime = r.timeRes.GameTime.Add(d)
	r.timeRes.FrameNumber++
}

func (r *rig) playerPos() core.Vec3 {
	pos, _ := r.world.Positions.Get(r.player)
	return pos.Vec3
}

func (r *rig) setPlayerPos(v core.Vec3) {
	r.world.Positions.Set(r.player, component.PositionComponent{Vec3: v})
}

func (r *rig) spawnEnemyAt(v core.Vec3) core.Entity {
	e := r.world.CreateEntity()
	r.world.Enemies.Set(e, component.EnemyComponent{Kind: component.EnemyWanderer, Speed: 2})
	r.world.AIs.Set(e, component.AIComponent{})
	r.world.Positions.Set(e, component.PositionComponent{Vec3: v})
	r.world.Velocities.Set(e, component.VelocityComponent{})
	return e
}

func (r *rig) spawnCollectibleAt(v core.Vec3) core.Entity {
	e := r.world.CreateEntity()
	r.world.Collectibles.Set(e, component.CollectibleComponent{})
	r.world.Positions.Set(e, component.PositionComponent{Vec3: v})
	return e
}

func (r *rig) spawnPowerUpAt(v core.Vec3, kind component.PowerUpKind) core.Entity {
	e := r.world.CreateEntity()
	r.world.PowerUps.Set(e, component.PowerUpComponent{Kind: kind})
	r.world.Positions.Set(e, component.PositionComponent{Vec3: v})
	return e
}

func (r *rig) spawnGoalAt(v core.Vec3) core.Entity {
	e := r.world.CreateEntity()
	r.world.Goals.Set(e, component.GoalComponent{})
	r.world.Positions.Set(e, component.PositionComponent{Vec3: v})
	return e
}

func (r *rig) drainTypes() map[event.EventType]int {
	counts := make(map[event.EventType]int)
	for _, ev := range r.queue.Consume() {
		counts[ev.Type]++
	}
	return counts
}
