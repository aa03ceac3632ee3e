package system

import (
	"time"

	"github.com/lixenwraith/neon-maze/ai"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/parameter"
)

// AISystem ticks every enemy's behavior controller once per frame while
// the game is in play. Enemies are ticked in ascending entity order so a
// frame is deterministic for a given world state.
type AISystem struct {
	world      *engine.World
	stateRes   *engine.GameStateResource
	controller *ai.Controller

	enemyQuery  *engine.Query
	playerQuery *engine.Query
}

func NewAISystem(world *engine.World, controller *ai.Controller) *AISystem {
	return &AISystem{
		world:      world,
		stateRes:   engine.MustGetResource[*engine.GameStateResource](world.Resources),
		controller: controller,
		enemyQuery: world.DefineQuery(
			world.Enemies, world.AIs, world.Positions, world.Velocities,
		),
		playerQuery: world.DefineQuery(
			world.Players, world.Positions,
		),
	}
}

func (s *AISystem) Name() string { return "ai" }

func (s *AISystem) Priority() int { return parameter.PriorityAI }

func (s *AISystem) Update(dt time.Duration) {
	if s.stateRes.State.Phase() != core.PhasePlaying {
		return
	}

	players := s.playerQuery.Entities()
	if len(players) == 0 {
		return
	}
	playerPos, _ := s.world.Positions.Get(players[0])

	for _, e := range s.enemyQuery.Entities() {
		s.controller.Tick(e, playerPos.Vec3, dt)
	}
}
