package system

import (
	"math"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/parameter"
)

// ExplorationSystem reveals the maze around the player and maintains the
// breadcrumb trail: markers drop on a cadence while moving and are culled
// when their lifetime passes.
type ExplorationSystem struct {
	world    *engine.World
	timeRes  *engine.TimeResource
	stateRes *engine.GameStateResource
	mazeRes  *engine.MazeResource

	playerQuery *engine.Query
	trailQuery  *engine.Query

	sinceTrailDrop time.Duration
}

func NewExplorationSystem(world *engine.World) *ExplorationSystem {
	return &ExplorationSystem{
		world:    world,
		timeRes:  engine.MustGetResource[*engine.TimeResource](world.Resources),
		stateRes: engine.MustGetResource[*engine.GameStateResource](world.Resources),
		mazeRes:  engine.MustGetResource[*engine.MazeResource](world.Resources),
		playerQuery: world.DefineQuery(
			world.Players, world.Positions, world.Velocities,
		),
		trailQuery: world.DefineQuery(
			world.Trails, world.Positions,
		),
	}
}

func (s *ExplorationSystem) Name() string { return "exploration" }

func (s *ExplorationSystem) Priority() int { return parameter.PriorityExploration }

func (s *ExplorationSystem) Update(dt time.Duration) {
	s.cullTrails()

	if s.stateRes.State.Phase() != core.PhasePlaying {
		return
	}

	players := s.playerQuery.Entities()
	if len(players) == 0 {
		return
	}
	player := players[0]
	pos, _ := s.world.Positions.Get(player)

	s.reveal(pos.Vec3)
	s.dropTrail(player, pos.Vec3, dt)
}

// reveal marks every cell within the exploration radius of the player.
func (s *ExplorationSystem) reveal(pos core.Vec3) {
	if s.mazeRes.Grid == nil {
		return
	}
	cell := maze.WorldToGrid(pos)
	r := parameter.ExplorationRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			s.mazeRes.MarkVisited(cell.X+dx, cell.Y+dy)
		}
	}
}

// dropTrail leaves a fading marker behind a moving player on a cadence.
func (s *ExplorationSystem) dropTrail(player core.Entity, pos core.Vec3, dt time.Duration) {
	vel, _ := s.world.Velocities.Get(player)
	if math.Hypot(vel.X, vel.Z) < parameter.MoveTickMinSpeed {
		s.sinceTrailDrop = 0
		return
	}

	s.sinceTrailDrop += dt
	if s.sinceTrailDrop < parameter.TrailDropInterval {
		return
	}
	s.sinceTrailDrop = 0

	marker := s.world.CreateEntity()
	s.world.Positions.Set(marker, component.PositionComponent{Vec3: core.Vec3{X: pos.X, Z: pos.Z}})
	s.world.Trails.Set(marker, component.TrailComponent{
		ExpiresAt: s.timeRes.GameTime.Add(parameter.TrailLifetime),
	})
	s.world.Animations.Set(marker, component.AnimationComponent{Speed: 1})
}

func (s *ExplorationSystem) cullTrails() {
	now := s.timeRes.GameTime
	for _, e := range s.trailQuery.Entities() {
		if trail, ok := s.world.Trails.Get(e); ok && !trail.ExpiresAt.After(now) {
			s.world.DestroyEntity(e)
		}
	}
}
