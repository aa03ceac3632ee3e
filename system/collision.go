package system

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/parameter"
)

// CollisionSystem resolves all contact for the frame in a fixed order:
// walls, collectibles, power-ups, enemy contact, enemy separation, goal.
// It runs after movement so it always sees integrated positions, and it
// is the only system that awards score or applies damage.
type CollisionSystem struct {
	world     *engine.World
	stateRes  *engine.GameStateResource
	timeRes   *engine.TimeResource
	eqRes     *engine.EventQueueResource
	mazeRes   *engine.MazeResource
	pool      *engine.ParticlePool
	scheduler *engine.WorkScheduler
	rng       *rand.Rand

	playerQuery      *engine.Query
	enemyQuery       *engine.Query
	collectibleQuery *engine.Query
	powerUpQuery     *engine.Query
	goalQuery        *engine.Query

	// onLevelComplete is invoked after the transition delay to build the
	// next level; injected by the frame loop owner
	onLevelComplete func()
}

func NewCollisionSystem(world *engine.World, rng *rand.Rand, onLevelComplete func()) *CollisionSystem {
	return &CollisionSystem{
		world:     world,
		stateRes:  engine.MustGetResource[*engine.GameStateResource](world.Resources),
		timeRes:   engine.MustGetResource[*engine.TimeResource](world.Resources),
		eqRes:     engine.MustGetResource[*engine.EventQueueResource](world.Resources),
		mazeRes:   engine.MustGetResource[*engine.MazeResource](world.Resources),
		pool:      engine.MustGetResource[*engine.ParticlePoolResource](world.Resources).Pool,
		scheduler: engine.MustGetResource[*engine.SchedulerResource](world.Resources).Scheduler,
		rng:       rng,
		playerQuery: world.DefineQuery(
			world.Players, world.Positions, world.Velocities,
		),
		enemyQuery: world.DefineQuery(
			world.Enemies, world.Positions, world.Velocities,
		),
		collectibleQuery: world.DefineQuery(
			world.Collectibles, world.Positions,
		),
		powerUpQuery: world.DefineQuery(
			world.PowerUps, world.Positions,
		),
		goalQuery: world.DefineQuery(
			world.Goals, world.Positions,
		),
		onLevelComplete: onLevelComplete,
	}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update(dt time.Duration) {
	if s.stateRes.State.Phase() != core.PhasePlaying {
		return
	}

	players := s.playerQuery.Entities()
	if len(players) == 0 {
		return
	}
	player := players[0]

	s.resolveWalls(player, parameter.PlayerRadius, true)
	for _, e := range s.enemyQuery.Entities() {
		s.resolveWalls(e, parameter.EnemyRadius, false)
	}

	s.resolveCollectibles(player)
	s.resolvePowerUps(player)
	s.resolveEnemyContact(player)
	s.separateEnemies()
	s.resolveGoal(player)
}

// resolveWalls pushes a circular body out of any overlapping wall cell
// and reflects the velocity component along the contact normal. Hard
// player impacts spark and shake.
func (s *CollisionSystem) resolveWalls(e core.Entity, radius float64, isPlayer bool) {
	grid := s.mazeRes.Grid
	if grid == nil {
		return
	}

	pos, _ := s.world.Positions.Get(e)
	vel, _ := s.world.Velocities.Get(e)

	cx := int(math.Floor(pos.X / parameter.CellSize))
	cy := int(math.Floor(pos.Z / parameter.CellSize))

	for gy := cy - 1; gy <= cy+1; gy++ {
		for gx := cx - 1; gx <= cx+1; gx++ {
			if !grid.IsWall(gx, gy) {
				continue
			}

			minX := float64(gx) * parameter.CellSize
			minZ := float64(gy) * parameter.CellSize
			closestX := clamp(pos.X, minX, minX+parameter.CellSize)
			closestZ := clamp(pos.Z, minZ, minZ+parameter.CellSize)

			dx := pos.X - closestX
			dz := pos.Z - closestZ
			distSq := dx*dx + dz*dz
			if distSq >= radius*radius {
				continue
			}

			var nx, nz float64
			if distSq > 1e-12 {
				dist := math.Sqrt(distSq)
				nx, nz = dx/dist, dz/dist
				pos.X = closestX + nx*radius
				pos.Z = closestZ + nz*radius
			} else {
				// Center inside the wall block: push out along the axis
				// of least penetration
				nx, nz = escapeNormal(pos.X, pos.Z, minX, minZ)
				pos.X += nx * radius
				pos.Z += nz * radius
			}

			vn := vel.X*nx + vel.Z*nz
			if vn < 0 {
				vel.X -= (1 + parameter.WallRestitution) * vn * nx
				vel.Z -= (1 + parameter.WallRestitution) * vn * nz

				impact := -vn
				if isPlayer && impact >= parameter.ScrapeSpeedThreshold {
					s.sparkBurst(pos.Vec3, nx, nz)
					s.emit(event.EventScrape, &event.ScrapePayload{
						Entity:   e,
						Speed:    impact,
						Position: pos.Vec3,
					})
					s.emit(event.EventScreenShake, &event.ScreenShakePayload{
						Magnitude: impact / parameter.ScrapeSpeedThreshold,
					})
				}
			}
		}
	}

	s.world.Positions.Set(e, pos)
	s.world.Velocities.Set(e, vel)
}

// escapeNormal picks the cheapest axis out of a cell the point is inside.
func escapeNormal(px, pz, minX, minZ float64) (float64, float64) {
	half := parameter.CellSize / 2
	centerX := minX + half
	centerZ := minZ + half
	ox := px - centerX
	oz := pz - centerZ
	if math.Abs(ox) > math.Abs(oz) {
		return math.Copysign(1, ox), 0
	}
	return 0, math.Copysign(1, oz)
}

func (s *CollisionSystem) resolveCollectibles(player core.Entity) {
	playerPos, _ := s.world.Positions.Get(player)
	state := s.stateRes.State

	for _, e := range s.collectibleQuery.Entities() {
		pos, _ := s.world.Positions.Get(e)
		if playerPos.DistXZ(pos.Vec3) > parameter.CollectibleRadius {
			continue
		}

		multiplier := 1
		if m, ok := s.world.Multipliers.Get(player); ok {
			multiplier = m.Value
		}
		awarded := parameter.CollectibleValue * state.Level() * multiplier
		state.AddScore(awarded)
		state.RegenEnergy(parameter.CollectibleEnergyRefund)

		s.emit(event.EventCollect, &event.CollectPayload{
			Entity:   e,
			Position: pos.Vec3,
			Awarded:  awarded,
		})
		s.world.DestroyEntity(e)
	}
}

func (s *CollisionSystem) resolvePowerUps(player core.Entity) {
	playerPos, _ := s.world.Positions.Get(player)

	for _, e := range s.powerUpQuery.Entities() {
		pos, _ := s.world.Positions.Get(e)
		if playerPos.DistXZ(pos.Vec3) > parameter.PowerUpRadius {
			continue
		}

		pu, _ := s.world.PowerUps.Get(e)
		switch pu.Kind {
		case component.PowerUpSpeed:
			s.world.SpeedBoosts.Set(player, component.SpeedBoostComponent{})
			s.applyStatusTimer(player, component.StatusSpeedBoost, parameter.SpeedBoostDuration)
		case component.PowerUpShield:
			s.world.Shields.Set(player, component.ShieldComponent{})
			s.applyStatusTimer(player, component.StatusShield, parameter.ShieldDuration)
		case component.PowerUpMultiplier:
			s.world.Multipliers.Set(player, component.ScoreMultiplierComponent{
				Value: parameter.ScoreMultiplierValue,
			})
			s.applyStatusTimer(player, component.StatusScoreMultiplier, parameter.MultiplierDuration)
		case component.PowerUpEnergy:
			// Instant full refill, no status or timer
			s.stateRes.State.RegenEnergy(parameter.MaxEnergy)
		}

		s.emit(event.EventPowerUp, &event.PowerUpPayload{
			Entity:   e,
			Kind:     pu.Kind,
			Position: pos.Vec3,
		})
		s.world.DestroyEntity(e)
	}
}

// applyStatusTimer creates or refreshes the countdown entity for a status
// on the target. Re-collecting a power-up extends it rather than stacking.
func (s *CollisionSystem) applyStatusTimer(target core.Entity, kind component.StatusKind, duration time.Duration) {
	expiresAt := s.timeRes.GameTime.Add(duration)

	for _, e := range s.world.EffectTimers.All() {
		t, _ := s.world.EffectTimers.Get(e)
		if t.Target == target && t.Kind == kind {
			t.ExpiresAt = expiresAt
			s.world.EffectTimers.Set(e, t)
			return
		}
	}

	timer := s.world.CreateEntity()
	s.world.EffectTimers.Set(timer, component.EffectTimerComponent{
		Target:    target,
		Kind:      kind,
		ExpiresAt: expiresAt,
	})
}

func (s *CollisionSystem) resolveEnemyContact(player core.Entity) {
	playerPos, _ := s.world.Positions.Get(player)
	state := s.stateRes.State

	for _, e := range s.enemyQuery.Entities() {
		pos, _ := s.world.Positions.Get(e)
		if playerPos.DistXZ(pos.Vec3) > parameter.ContactRadius {
			continue
		}

		if s.world.Shields.Has(player) {
			continue
		}

		_, fatal := state.Damage(parameter.ContactDamage)

		// Symmetric knockback along the separating normal
		vel, _ := s.world.Velocities.Get(player)
		enemyVel, _ := s.world.Velocities.Get(e)
		dx := playerPos.X - pos.X
		dz := playerPos.Z - pos.Z
		if length := math.Hypot(dx, dz); length > 1e-9 {
			nx, nz := dx/length, dz/length
			vel.X += nx * parameter.ContactKnockback
			vel.Z += nz * parameter.ContactKnockback
			enemyVel.X -= nx * parameter.ContactKnockback
			enemyVel.Z -= nz * parameter.ContactKnockback
		}
		s.world.Velocities.Set(player, vel)
		s.world.Velocities.Set(e, enemyVel)

		// Brief shield so one contact cannot multi-hit across frames
		s.world.Shields.Set(player, component.ShieldComponent{})
		s.applyStatusTimer(player, component.StatusShield, parameter.PostHitShieldDuration)

		s.emit(event.EventDamage, &event.DamagePayload{
			Source: e,
			Amount: parameter.ContactDamage,
			Fatal:  fatal,
		})
		s.emit(event.EventScreenShake, &event.ScreenShakePayload{Magnitude: 1})

		if fatal {
			state.SetPhase(core.PhaseGameOver)
			return
		}
	}
}

// separateEnemies pushes overlapping enemy pairs apart symmetrically.
// Pairs resolve in ascending entity order.
func (s *CollisionSystem) separateEnemies() {
	enemies := s.enemyQuery.Entities()
	minDist := 2 * parameter.EnemyRadius

	for i := 0; i < len(enemies); i++ {
		for j := i + 1; j < len(enemies); j++ {
			a, b := enemies[i], enemies[j]
			posA, _ := s.world.Positions.Get(a)
			posB, _ := s.world.Positions.Get(b)

			dx := posB.X - posA.X
			dz := posB.Z - posA.Z
			dist := math.Hypot(dx, dz)
			if dist >= minDist {
				continue
			}

			var nx, nz float64
			if dist > 1e-9 {
				nx, nz = dx/dist, dz/dist
			} else {
				nx, nz = 1, 0 // coincident: arbitrary but fixed axis
			}
			push := (minDist - dist) / 2
			posA.X -= nx * push
			posA.Z -= nz * push
			posB.X += nx * push
			posB.Z += nz * push

			s.world.Positions.Set(a, posA)
			s.world.Positions.Set(b, posB)
		}
	}
}

func (s *CollisionSystem) resolveGoal(player core.Entity) {
	playerPos, _ := s.world.Positions.Get(player)
	state := s.stateRes.State

	for _, e := range s.goalQuery.Entities() {
		pos, _ := s.world.Positions.Get(e)
		if playerPos.DistXZ(pos.Vec3) > parameter.GoalRadius {
			continue
		}

		completed := state.Level()
		state.AddScore(parameter.GoalScoreBonus * completed)
		state.Heal(parameter.GoalHealAmount)

		s.emit(event.EventLevelUp, &event.LevelUpPayload{
			Level: completed,
			Score: state.Score(),
		})

		// Victory is decided by the level being entered, not the one
		// just finished
		next := completed + 1
		state.SetLevel(next)
		if next >= parameter.VictoryLevel {
			state.SetPhase(core.PhaseGameWon)
			return
		}

		state.SetPhase(core.PhaseTransitioning)
		runAt := s.timeRes.GameTime.Add(parameter.LevelTransitionDelay)
		s.scheduler.Schedule(core.EntityNone, runAt, s.onLevelComplete)
		return
	}
}

// sparkBurst spawns a fan of short-lived particles off a wall impact.
// Pool exhaustion silently truncates the burst.
func (s *CollisionSystem) sparkBurst(pos core.Vec3, nx, nz float64) {
	for i := 0; i < parameter.SparkCount; i++ {
		angle := math.Atan2(nz, nx) + (s.rng.Float64()-0.5)*math.Pi
		speed := parameter.SparkSpread * (0.5 + s.rng.Float64()*0.5)
		vel := core.Vec3{
			X: math.Cos(angle) * speed,
			Y: 2 + s.rng.Float64()*2,
			Z: math.Sin(angle) * speed,
		}
		if _, ok := s.pool.Spawn(pos, vel, parameter.SparkLifetime); !ok {
			return
		}
	}
}

func (s *CollisionSystem) emit(t event.EventType, payload any) {
	s.eqRes.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   s.timeRes.FrameNumber,
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
