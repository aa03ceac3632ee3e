package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking.
// Scheduled work and effect deadlines read game time, so pausing freezes
// them without per-timer bookkeeping.
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time // When clock was created (real time)
	gameStartTime time.Time // Game time epoch (adjusted for pauses)

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock.
func NewPausableClock() *PausableClock {
	now := time.Now()
	return &PausableClock{
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: frozen at the pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	realElapsed := time.Since(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns actual wall clock time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return time.Now()
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = time.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += time.Since(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}
