package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/parameter"
)

func TestRevealAroundPlayer(t *testing.T) {
	r := newRig(t)
	xs := NewExplorationSystem(r.world)

	xs.Update(testDt)

	// Player sits at cell (2,2); everything within the radius is lit
	cell := maze.WorldToGrid(r.playerPos())
	for dy := -parameter.ExplorationRadius; dy <= parameter.ExplorationRadius; dy++ {
		for dx := -parameter.ExplorationRadius; dx <= parameter.ExplorationRadius; dx++ {
			x, y := cell.X+dx, cell.Y+dy
			if r.mazeRes.Grid.InBounds(x, y) && !r.mazeRes.IsVisited(x, y) {
				t.Errorf("cell (%d,%d) inside reveal radius not visited", x, y)
			}
		}
	}

	// The far corner stays dark
	if r.mazeRes.IsVisited(6, 4) {
		t.Error("cell outside reveal radius marked visited")
	}
	if r.mazeRes.VisitedCount == 0 {
		t.Error("visited count not maintained")
	}
}

func TestTrailDropCadence(t *testing.T) {
	r := newRig(t)
	xs := NewExplorationSystem(r.world)

	r.world.Velocities.Set(r.player, component.VelocityComponent{Vec3: core.Vec3{X: 5}})

	frames := int(parameter.TrailDropInterval/testDt) + 1
	for i := 0; i < frames; i++ {
		xs.Update(testDt)
	}
	if n := r.world.Trails.Count(); n != 1 {
		t.Errorf("trail markers after one interval = %d, want 1", n)
	}

	for i := 0; i < frames; i++ {
		xs.Update(testDt)
	}
	if n := r.world.Trails.Count(); n != 2 {
		t.Errorf("trail markers after two intervals = %d, want 2", n)
	}
}

func TestNoTrailWhileStationary(t *testing.T) {
	r := newRig(t)
	xs := NewExplorationSystem(r.world)

	for i := 0; i < 100; i++ {
		xs.Update(testDt)
	}
	if r.world.Trails.Count() != 0 {
		t.Error("stationary player left trail markers")
	}
}

func TestTrailCulledAfterLifetime(t *testing.T) {
	r := newRig(t)
	xs := NewExplorationSystem(r.world)

	marker := r.world.CreateEntity()
	r.world.Positions.Set(marker, component.PositionComponent{Vec3: r.playerPos()})
	r.world.Trails.Set(marker, component.TrailComponent{
		ExpiresAt: r.timeRes.GameTime.Add(time.Second),
	})

	xs.Update(testDt)
	if !r.world.Trails.Has(marker) {
		t.Fatal("fresh marker culled")
	}

	r.advance(time.Second + time.Millisecond)
	xs.Update(testDt)
	if r.world.Trails.Has(marker) {
		t.Error("expired marker survived")
	}
}

func TestTrailCullRunsEveryPhase(t *testing.T) {
	r := newRig(t)
	xs := NewExplorationSystem(r.world)

	marker := r.world.CreateEntity()
	r.world.Positions.Set(marker, component.PositionComponent{Vec3: r.playerPos()})
	r.world.Trails.Set(marker, component.TrailComponent{
		ExpiresAt: r.timeRes.GameTime.Add(-time.Second),
	})

	r.state.SetPhase(core.PhaseGameOver)
	xs.Update(testDt)
	if r.world.Trails.Has(marker) {
		t.Error("cull skipped outside PhasePlaying")
	}

	// No reveal happens while the game is over
	if r.mazeRes.VisitedCount != 0 {
		t.Error("reveal ran outside PhasePlaying")
	}
}
