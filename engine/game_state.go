package engine

import (
	"sync"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/parameter"
)

// StateSnapshot is an immutable copy of the player-visible game state,
// handed to frontends and observers.
type StateSnapshot struct {
	Score       int
	Level       int
	Health      int
	Energy      float64
	Phase       core.GamePhase
	BoostActive bool
}

// StateObserver receives a snapshot after any observable state change.
// Observers run synchronously on the frame goroutine; keep them cheap.
type StateObserver func(s StateSnapshot)

// GameState centralizes mutable session state with clamped setters.
// Every setter reports whether it actually changed anything, and observers
// are notified only on real changes, so frontends can redraw lazily.
type GameState struct {
	mu sync.RWMutex

	score       int
	level       int
	health      int
	energy      float64
	phase       core.GamePhase
	boostActive bool

	observers []StateObserver
}

// NewGameState returns session state at its starting values.
func NewGameState() *GameState {
	return &GameState{
		level:  1,
		health: parameter.MaxHealth,
		energy: parameter.MaxEnergy,
		phase:  core.PhaseLoading,
	}
}

// Subscribe registers an observer for state changes.
func (gs *GameState) Subscribe(fn StateObserver) {
	gs.mu.Lock()
	gs.observers = append(gs.observers, fn)
	gs.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (gs *GameState) Snapshot() StateSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.snapshotLocked()
}

func (gs *GameState) snapshotLocked() StateSnapshot {
	return StateSnapshot{
		Score:       gs.score,
		Level:       gs.level,
		Health:      gs.health,
		Energy:      gs.energy,
		Phase:       gs.phase,
		BoostActive: gs.boostActive,
	}
}

// notifyLocked snapshots under the held lock, releases it, and fans out.
// Observers may read state again; they must not mutate it re-entrantly.
func (gs *GameState) notifyLocked() {
	snap := gs.snapshotLocked()
	observers := gs.observers
	gs.mu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
	gs.mu.Lock()
}

// --- Accessors ---

func (gs *GameState) Score() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.score
}

func (gs *GameState) Level() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.level
}

func (gs *GameState) Health() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.health
}

func (gs *GameState) Energy() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.energy
}

func (gs *GameState) Phase() core.GamePhase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase
}

func (gs *GameState) BoostActive() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.boostActive
}

// --- Mutators ---

// AddScore adds points (never negative) and returns the new total.
func (gs *GameState) AddScore(points int) int {
	if points <= 0 {
		return gs.Score()
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.score += points
	gs.notifyLocked()
	return gs.score
}

// SetLevel moves to the given level. Returns false if unchanged.
func (gs *GameState) SetLevel(level int) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if level == gs.level {
		return false
	}
	gs.level = level
	gs.notifyLocked()
	return true
}

// Damage reduces health, clamped at zero. Returns the remaining health
// and whether the hit was fatal.
func (gs *GameState) Damage(amount int) (remaining int, fatal bool) {
	if amount <= 0 {
		return gs.Health(), false
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.health -= amount
	if gs.health < 0 {
		gs.health = 0
	}
	gs.notifyLocked()
	return gs.health, gs.health == 0
}

// Heal restores health, clamped at max. Returns false if already full.
func (gs *GameState) Heal(amount int) bool {
	if amount <= 0 {
		return false
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.health >= parameter.MaxHealth {
		return false
	}
	gs.health += amount
	if gs.health > parameter.MaxHealth {
		gs.health = parameter.MaxHealth
	}
	gs.notifyLocked()
	return true
}

// SpendEnergy deducts the cost if fully affordable. Returns false and
// leaves energy untouched when there is not enough.
func (gs *GameState) SpendEnergy(cost float64) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.energy < cost {
		return false
	}
	gs.energy -= cost
	gs.notifyLocked()
	return true
}

// DrainEnergy removes up to amount, flooring at zero. Returns the energy
// actually drained; partial drains happen at the floor.
func (gs *GameState) DrainEnergy(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	drained := amount
	if drained > gs.energy {
		drained = gs.energy
	}
	if drained == 0 {
		return 0
	}
	gs.energy -= drained
	gs.notifyLocked()
	return drained
}

// RegenEnergy restores energy, clamped at max. Returns false if full.
func (gs *GameState) RegenEnergy(amount float64) bool {
	if amount <= 0 {
		return false
	}
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.energy >= parameter.MaxEnergy {
		return false
	}
	gs.energy += amount
	if gs.energy > parameter.MaxEnergy {
		gs.energy = parameter.MaxEnergy
	}
	gs.notifyLocked()
	return true
}

// SetPhase transitions the session phase. Returns false if unchanged.
func (gs *GameState) SetPhase(phase core.GamePhase) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if phase == gs.phase {
		return false
	}
	gs.phase = phase
	gs.notifyLocked()
	return true
}

// SetBoostActive latches the boost flag. Returns false if unchanged.
func (gs *GameState) SetBoostActive(active bool) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if active == gs.boostActive {
		return false
	}
	gs.boostActive = active
	gs.notifyLocked()
	return true
}

// Reset returns all session state to starting values for a fresh run.
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.score = 0
	gs.level = 1
	gs.health = parameter.MaxHealth
	gs.energy = parameter.MaxEnergy
	gs.phase = core.PhaseLoading
	gs.boostActive = false
	gs.notifyLocked()
}
