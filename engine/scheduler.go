package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/neon-maze/core"
)

// WorkID identifies a scheduled unit of work for cancellation.
type WorkID uint64

// scheduledWork is one pending callback with an owner for bulk cancel.
type scheduledWork struct {
	id    WorkID
	owner core.Entity
	runAt time.Time
	fn    func()
}

// WorkScheduler runs deferred callbacks on the frame goroutine. Deadlines
// are checked once per frame against game time, so execution granularity
// is one frame; there are no timer goroutines to race with the pipeline.
//
// Used for jump cooldown expiry and the level transition delay. Work is
// cancellable individually, per owner, or wholesale on restart.
type WorkScheduler struct {
	mu      sync.Mutex
	nextID  WorkID
	pending []scheduledWork
}

// NewWorkScheduler creates an empty scheduler.
func NewWorkScheduler() *WorkScheduler {
	return &WorkScheduler{nextID: 1}
}

// Schedule queues fn to run once the given game time is reached. Owner
// may be EntityNone for work not tied to an entity.
func (ws *WorkScheduler) Schedule(owner core.Entity, runAt time.Time, fn func()) WorkID {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	id := ws.nextID
	ws.nextID++
	ws.pending = append(ws.pending, scheduledWork{
		id:    id,
		owner: owner,
		runAt: runAt,
		fn:    fn,
	})
	return id
}

// Cancel drops a single pending work item. Returns false if it already
// ran or was cancelled.
func (ws *WorkScheduler) Cancel(id WorkID) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i := range ws.pending {
		if ws.pending[i].id == id {
			ws.pending = append(ws.pending[:i], ws.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner drops all pending work belonging to an entity. Returns the
// number of items cancelled.
func (ws *WorkScheduler) CancelOwner(owner core.Entity) int {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	writeIdx := 0
	for _, w := range ws.pending {
		if w.owner != owner {
			ws.pending[writeIdx] = w
			writeIdx++
		}
	}
	cancelled := len(ws.pending) - writeIdx
	ws.pending = ws.pending[:writeIdx]
	return cancelled
}

// CancelAll drops every pending item. Called on restart.
func (ws *WorkScheduler) CancelAll() {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.pending = ws.pending[:0]
}

// HasOwner reports whether any pending work belongs to the entity.
func (ws *WorkScheduler) HasOwner(owner core.Entity) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	for _, w := range ws.pending {
		if w.owner == owner {
			return true
		}
	}
	return false
}

// Pending returns the number of queued items.
func (ws *WorkScheduler) Pending() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.pending)
}

// Tick runs every item whose deadline has passed, in deadline order.
// Callbacks run outside the lock and may schedule or cancel freely.
func (ws *WorkScheduler) Tick(now time.Time) {
	ws.mu.Lock()
	var due []scheduledWork
	writeIdx := 0
	for _, w := range ws.pending {
		if !w.runAt.After(now) {
			due = append(due, w)
		} else {
			ws.pending[writeIdx] = w
			writeIdx++
		}
	}
	ws.pending = ws.pending[:writeIdx]
	ws.mu.Unlock()

	if len(due) == 0 {
		return
	}
	sort.Slice(due, func(i, j int) bool { return due[i].runAt.Before(due[j].runAt) })
	for _, w := range due {
		w.fn()
	}
}
