package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/maze"
	"github.com/lixenwraith/neon-maze/parameter"
)

func TestWallContainmentAndBounce(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	// Overlap the left border wall (wall cells x<2 world units)
	r.setPlayerPos(core.Vec3{X: 2 + parameter.PlayerRadius/2, Z: 5})
	r.world.Velocities.Set(r.player, component.VelocityComponent{Vec3: core.Vec3{X: -3}})

	cs.Update(testDt)

	pos := r.playerPos()
	if pos.X < 2+parameter.PlayerRadius-1e-9 {
		t.Errorf("player still overlapping wall: X = %v", pos.X)
	}

	vel, _ := r.world.Velocities.Get(r.player)
	if vel.X < 0 {
		t.Errorf("velocity not reflected: vel.X = %v", vel.X)
	}
	want := 3 * parameter.WallRestitution
	if vel.X < want-1e-6 || vel.X > want+1e-6 {
		t.Errorf("restitution: vel.X = %v, want %v", vel.X, want)
	}
}

func TestHardImpactSparksAndEvents(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	r.setPlayerPos(core.Vec3{X: 2 + parameter.PlayerRadius/2, Z: 5})
	r.world.Velocities.Set(r.player, component.VelocityComponent{
		Vec3: core.Vec3{X: -(parameter.ScrapeSpeedThreshold + 2)},
	})

	free := r.pool.FreeCount()
	cs.Update(testDt)

	counts := r.drainTypes()
	if counts[event.EventScrape] == 0 {
		t.Error("no scrape event on hard impact")
	}
	if counts[event.EventScreenShake] == 0 {
		t.Error("no screen shake on hard impact")
	}
	if spawned := free - r.pool.FreeCount(); spawned != parameter.SparkCount {
		t.Errorf("spawned %d sparks, want %d", spawned, parameter.SparkCount)
	}
}

func TestCollectibleScoringWithLevelAndMultiplier(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	r.state.SetLevel(3)
	r.world.Multipliers.Set(r.player, component.ScoreMultiplierComponent{
		Value: parameter.ScoreMultiplierValue,
	})
	c := r.spawnCollectibleAt(r.playerPos())

	cs.Update(testDt)

	want := parameter.CollectibleValue * 3 * parameter.ScoreMultiplierValue
	if r.state.Score() != want {
		t.Errorf("score = %d, want %d", r.state.Score(), want)
	}
	if r.world.Collectibles.Has(c) {
		t.Error("collectible survived pickup")
	}

	for _, ev := range r.queue.Consume() {
		if ev.Type == event.EventCollect {
			p := ev.Payload.(*event.CollectPayload)
			if p.Awarded != want {
				t.Errorf("payload awarded = %d, want %d", p.Awarded, want)
			}
		}
	}
}

func TestContactDamageKnockbackAndPostHitShield(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	playerPos := r.playerPos()
	enemyPos := playerPos
	enemyPos.X -= parameter.ContactRadius / 2
	enemy := r.spawnEnemyAt(enemyPos)

	cs.Update(testDt)

	if r.state.Health() != parameter.MaxHealth-parameter.ContactDamage {
		t.Errorf("health = %d, want %d", r.state.Health(), parameter.MaxHealth-parameter.ContactDamage)
	}

	vel, _ := r.world.Velocities.Get(r.player)
	if vel.X <= 0 {
		t.Errorf("knockback vel.X = %v, want positive (away from enemy)", vel.X)
	}
	enemyVel, _ := r.world.Velocities.Get(enemy)
	if enemyVel.X >= 0 {
		t.Errorf("enemy knockback vel.X = %v, want negative (recoil)", enemyVel.X)
	}

	if !r.world.Shields.Has(r.player) {
		t.Fatal("no post-hit shield")
	}

	// Shield absorbs the follow-up contact
	cs.Update(testDt)
	if r.state.Health() != parameter.MaxHealth-parameter.ContactDamage {
		t.Error("shielded contact dealt damage")
	}
}

func TestLethalContactEndsGame(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	r.state.Damage(parameter.MaxHealth - parameter.ContactDamage) // one hit left
	r.spawnEnemyAt(r.playerPos())

	cs.Update(testDt)

	if r.state.Phase() != core.PhaseGameOver {
		t.Errorf("phase = %v, want gameOver", r.state.Phase())
	}
	var sawFatal bool
	for _, ev := range r.queue.Consume() {
		if ev.Type == event.EventDamage {
			if p := ev.Payload.(*event.DamagePayload); p.Fatal {
				sawFatal = true
			}
		}
	}
	if !sawFatal {
		t.Error("no fatal damage event")
	}
}

func TestPowerUpAppliesStatusWithTimer(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	r.spawnPowerUpAt(r.playerPos(), component.PowerUpShield)
	cs.Update(testDt)

	if !r.world.Shields.Has(r.player) {
		t.Error("shield status not applied")
	}
	if r.world.EffectTimers.Count() != 1 {
		t.Fatalf("effect timers = %d, want 1", r.world.EffectTimers.Count())
	}

	// Re-applying refreshes the deadline instead of stacking timers
	timerEntity := r.world.EffectTimers.All()[0]
	before, _ := r.world.EffectTimers.Get(timerEntity)

	r.advance(time.Second)
	r.spawnPowerUpAt(r.playerPos(), component.PowerUpShield)
	cs.Update(testDt)

	if r.world.EffectTimers.Count() != 1 {
		t.Errorf("effect timers after refresh = %d, want 1", r.world.EffectTimers.Count())
	}
	after, _ := r.world.EffectTimers.Get(timerEntity)
	if !after.ExpiresAt.After(before.ExpiresAt) {
		t.Error("refresh did not extend the deadline")
	}
}

func TestEnergyPowerUpRefillsToMax(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	r.state.DrainEnergy(70)
	r.spawnPowerUpAt(r.playerPos(), component.PowerUpEnergy)
	cs.Update(testDt)

	if r.state.Energy() != parameter.MaxEnergy {
		t.Errorf("energy = %v, want full refill to %v", r.state.Energy(), parameter.MaxEnergy)
	}
	if r.world.EffectTimers.Count() != 0 {
		t.Error("energy pickup created a status timer")
	}
}

func TestGoalArrivalSchedulesNextLevel(t *testing.T) {
	r := newRig(t)
	var built bool
	cs := NewCollisionSystem(r.world, r.rng, func() { built = true })

	r.state.Damage(50)
	r.spawnGoalAt(r.playerPos())

	cs.Update(testDt)

	if r.state.Phase() != core.PhaseTransitioning {
		t.Fatalf("phase = %v, want transitioning", r.state.Phase())
	}
	if r.state.Level() != 2 {
		t.Errorf("level = %d, want 2", r.state.Level())
	}
	if r.state.Score() != parameter.GoalScoreBonus {
		t.Errorf("score = %d, want %d", r.state.Score(), parameter.GoalScoreBonus)
	}
	if r.state.Health() != parameter.MaxHealth-50+parameter.GoalHealAmount {
		t.Errorf("health = %d after goal heal", r.state.Health())
	}
	if built {
		t.Error("next level built before the transition delay")
	}

	// The rebuild fires only after the delay elapses
	r.scheduler.Tick(r.timeRes.GameTime.Add(parameter.LevelTransitionDelay / 2))
	if built {
		t.Error("rebuild ran early")
	}
	r.scheduler.Tick(r.timeRes.GameTime.Add(parameter.LevelTransitionDelay + time.Millisecond))
	if !built {
		t.Error("rebuild never ran")
	}
}

func TestGoalOnFinalLevelWinsGame(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {
		t.Error("scheduled a rebuild after victory")
	})

	// Clearing the level below the threshold is the winning run
	r.state.SetLevel(parameter.VictoryLevel - 1)
	r.spawnGoalAt(r.playerPos())

	cs.Update(testDt)
	r.scheduler.Tick(r.timeRes.GameTime.Add(time.Hour))

	if r.state.Phase() != core.PhaseGameWon {
		t.Errorf("phase = %v, want gameWon", r.state.Phase())
	}
	if r.state.Level() != parameter.VictoryLevel {
		t.Errorf("level = %d, want %d", r.state.Level(), parameter.VictoryLevel)
	}
}

func TestEnemySeparation(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	center := maze.GridToWorld(maze.Cell{X: 3, Y: 2})
	a := r.spawnEnemyAt(center)
	b := r.spawnEnemyAt(core.Vec3{X: center.X + 0.1, Z: center.Z})

	cs.Update(testDt)

	posA, _ := r.world.Positions.Get(a)
	posB, _ := r.world.Positions.Get(b)
	if d := posA.DistXZ(posB.Vec3); d < 2*parameter.EnemyRadius-1e-6 {
		t.Errorf("enemies still overlapping: dist = %v", d)
	}
}

func TestCollisionIdleOutsidePlaying(t *testing.T) {
	r := newRig(t)
	cs := NewCollisionSystem(r.world, r.rng, func() {})

	r.state.SetPhase(core.PhaseGameOver)
	r.spawnCollectibleAt(r.playerPos())

	cs.Update(testDt)
	if r.state.Score() != 0 {
		t.Error("collision system scored outside PhasePlaying")
	}
}
