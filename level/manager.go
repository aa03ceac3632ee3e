package level

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/neon-maze/ai"
	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/parameter"
)

// spawnSafeDistance keeps enemies and pickups out of the player's
// starting pocket, in cells.
const spawnSafeDistance = 4

// Manager builds and tears down levels. The player entity is created once
// and repositioned; everything else that belongs to a level is destroyed
// and respawned on rebuild. Pooled particles are untouched.
type Manager struct {
	world      *engine.World
	cfg        Config
	rng        *rand.Rand
	controller *ai.Controller

	mazeRes *engine.MazeResource
	timeRes *engine.TimeResource
	eqRes   *engine.EventQueueResource

	player        core.Entity
	levelEntities []core.Entity
	enemies       []core.Entity
}

// NewManager wires a manager against an initialized world.
func NewManager(world *engine.World, cfg Config, rng *rand.Rand, controller *ai.Controller) *Manager {
	return &Manager{
		world:      world,
		cfg:        cfg,
		rng:        rng,
		controller: controller,
		mazeRes:    engine.MustGetResource[*engine.MazeResource](world.Resources),
		timeRes:    engine.MustGetResource[*engine.TimeResource](world.Resources),
		eqRes:      engine.MustGetResource[*engine.EventQueueResource](world.Resources),
	}
}

// Player returns the player entity, or EntityNone before the first build.
func (m *Manager) Player() core.Entity {
	return m.player
}

// Build generates the maze for a level and populates it. The previous
// level's entities are torn down first; the player survives and respawns
// at the start cell.
func (m *Manager) Build(level int) error {
	size := m.cfg.SizeForLevel(level)
	grid, err := maze.Generate(size, size, m.rng)
	if err != nil {
		return fmt.Errorf("build level %d: %w", level, err)
	}

	m.teardown()

	m.mazeRes.Grid = grid
	m.mazeRes.ResetVisited()
	m.controller.SetGrid(grid)

	start := maze.Cell{X: 1, Y: 1}
	m.spawnPlayer(start)
	m.spawnWalls(grid)

	open := grid.OpenCells()
	used := map[maze.Cell]bool{start: true}

	goalCell := farthestCell(open, start)
	used[goalCell] = true
	m.spawnGoal(goalCell)

	m.spawnEnemies(open, used, start, level)
	m.spawnPickups(open, used, start)

	m.eqRes.Queue.Push(event.GameEvent{
		Type: event.EventLevelReady,
		Payload: &event.LevelReadyPayload{
			Level:  level,
			Width:  grid.Width(),
			Height: grid.Height(),
		},
		Frame: m.timeRes.FrameNumber,
	})
	return nil
}

// teardown destroys everything the previous level spawned.
func (m *Manager) teardown() {
	for _, e := range m.enemies {
		m.controller.Unregister(e)
	}
	m.enemies = m.enemies[:0]

	m.world.DestroyBatch(m.levelEntities)
	m.levelEntities = m.levelEntities[:0]

	// Breadcrumbs belong to the old maze
	m.world.DestroyBatch(m.world.Trails.All())

	// Timed statuses end with the level: revoke each timer's pending
	// removal now, then drop the timers themselves
	for _, e := range m.world.EffectTimers.All() {
		timer, ok := m.world.EffectTimers.Get(e)
		if !ok {
			continue
		}
		switch timer.Kind {
		case component.StatusSpeedBoost:
			m.world.SpeedBoosts.Remove(timer.Target)
		case component.StatusShield:
			m.world.Shields.Remove(timer.Target)
		case component.StatusScoreMultiplier:
			m.world.Multipliers.Remove(timer.Target)
		}
	}
	m.world.DestroyBatch(m.world.EffectTimers.All())
}

func (m *Manager) track(e core.Entity) core.Entity {
	m.levelEntities = append(m.levelEntities, e)
	return e
}

func (m *Manager) spawnPlayer(start maze.Cell) {
	pos := component.PositionComponent{Vec3: maze.GridToWorld(start)}
	if m.player == core.EntityNone {
		m.player = m.world.CreateEntity()
		m.world.Players.Set(m.player, component.PlayerComponent{})
	}
	m.world.Positions.Set(m.player, pos)
	m.world.Velocities.Set(m.player, component.VelocityComponent{})
}

func (m *Manager) spawnWalls(grid *maze.Grid) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if !grid.IsWall(x, y) {
				continue
			}
			e := m.track(m.world.CreateEntity())
			m.world.Walls.Set(e, component.WallComponent{HalfSize: parameter.WallHalfSize})
			m.world.Positions.Set(e, component.PositionComponent{
				Vec3: maze.GridToWorld(maze.Cell{X: x, Y: y}),
			})
		}
	}
}

func (m *Manager) spawnGoal(cell maze.Cell) {
	e := m.track(m.world.CreateEntity())
	m.world.Goals.Set(e, component.GoalComponent{})
	m.world.Positions.Set(e, component.PositionComponent{Vec3: maze.GridToWorld(cell)})
	m.world.Animations.Set(e, component.AnimationComponent{Speed: 0.5})
}

func (m *Manager) spawnEnemies(open []maze.Cell, used map[maze.Cell]bool, start maze.Cell, level int) {
	count := len(open) / m.cfg.EnemyDivisor
	if count < 1 {
		count = 1
	}

	for i := 0; i < count; i++ {
		cell, ok := m.pickSpawnCell(open, used, start)
		if !ok {
			return
		}

		kind := component.EnemyWanderer
		speed := parameter.WandererSpeed
		if i%3 == 2 || level >= 10 && i%2 == 1 {
			kind = component.EnemyChaser
			speed = parameter.ChaserSpeed
		}

		e := m.track(m.world.CreateEntity())
		m.world.Enemies.Set(e, component.EnemyComponent{Kind: kind, Speed: speed})
		m.world.AIs.Set(e, component.AIComponent{})
		m.world.Positions.Set(e, component.PositionComponent{Vec3: maze.GridToWorld(cell)})
		m.world.Velocities.Set(e, component.VelocityComponent{})
		m.world.Animations.Set(e, component.AnimationComponent{Speed: 2})
		m.controller.Register(e)
		m.enemies = append(m.enemies, e)
	}
}

func (m *Manager) spawnPickups(open []maze.Cell, used map[maze.Cell]bool, start maze.Cell) {
	collectibles := len(open) / m.cfg.CollectibleDivisor
	for i := 0; i < collectibles; i++ {
		cell, ok := m.pickSpawnCell(open, used, start)
		if !ok {
			break
		}
		e := m.track(m.world.CreateEntity())
		m.world.Collectibles.Set(e, component.CollectibleComponent{})
		m.world.Positions.Set(e, component.PositionComponent{Vec3: maze.GridToWorld(cell)})
		m.world.Animations.Set(e, component.AnimationComponent{Speed: 1.5})
	}

	powerUps := len(open) / m.cfg.PowerUpDivisor
	for i := 0; i < powerUps; i++ {
		cell, ok := m.pickSpawnCell(open, used, start)
		if !ok {
			break
		}
		kind := component.PowerUpKind(m.rng.Intn(component.PowerUpKindCount))
		e := m.track(m.world.CreateEntity())
		m.world.PowerUps.Set(e, component.PowerUpComponent{Kind: kind})
		m.world.Positions.Set(e, component.PositionComponent{Vec3: maze.GridToWorld(cell)})
		m.world.Animations.Set(e, component.AnimationComponent{Speed: 1})
	}
}

// pickSpawnCell draws random open cells until it finds an unused one
// outside the player's starting pocket. Bounded probing; dense small
// levels may come up short, which callers tolerate.
func (m *Manager) pickSpawnCell(open []maze.Cell, used map[maze.Cell]bool, start maze.Cell) (maze.Cell, bool) {
	for attempt := 0; attempt < 64; attempt++ {
		cell := open[m.rng.Intn(len(open))]
		if used[cell] {
			continue
		}
		if manhattan(cell, start) < spawnSafeDistance {
			continue
		}
		used[cell] = true
		return cell, true
	}
	return maze.Cell{}, false
}

// farthestCell picks the open cell with the greatest Manhattan distance
// from the start. Row-major tie-break keeps it deterministic.
func farthestCell(open []maze.Cell, start maze.Cell) maze.Cell {
	best := start
	bestDist := -1
	for _, c := range open {
		if d := manhattan(c, start); d > bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func manhattan(a, b maze.Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
