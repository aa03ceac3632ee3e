package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/maze"
)

// ResourceStore is a thread-safe container for global game resources
// It allows systems to access shared data (Time, Input, State) without
// coupling to the frame loop owner
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store
// T should be a pointer type so systems share one mutable instance
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (Time, State) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps time data for systems
// Updated by the frame loop at the start of every Step
type TimeResource struct {
	// GameTime is the current time in the game world (affected by pause)
	GameTime time.Time

	// RealTime is the wall-clock time (unaffected by pause)
	RealTime time.Time

	// DeltaTime is the clamped duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// InputResource is the frame-latched input state written by the frontend
// and consumed by the input system. One-shot actions are cleared by the
// input system after handling.
type InputResource struct {
	// Continuous intent, each axis in [-1, 1]
	MoveX float64
	MoveZ float64

	// Held
	Boost bool

	// One-shot
	Jump         bool
	Restart      bool
	CameraToggle bool
	MuteToggle   bool
}

// ClearOneShot resets edge-triggered actions after the input system has
// consumed them.
func (r *InputResource) ClearOneShot() {
	r.Jump = false
	r.Restart = false
	r.CameraToggle = false
	r.MuteToggle = false
}

// EventQueueResource wraps the shared event queue
type EventQueueResource struct {
	Queue *event.EventQueue
}

// GameStateResource wraps the centralized game state
type GameStateResource struct {
	State *GameState
}

// SchedulerResource wraps the frame-checked work scheduler
type SchedulerResource struct {
	Scheduler *WorkScheduler
}

// ParticlePoolResource wraps the fixed particle pool
type ParticlePoolResource struct {
	Pool *ParticlePool
}

// MazeResource holds the active level's grid and exploration state.
// Replaced wholesale on level build; systems re-read it each frame.
type MazeResource struct {
	Grid *maze.Grid

	// Visited is row-major exploration state for the current grid
	Visited      []bool
	VisitedCount int
}

// ResetVisited reallocates exploration state for a new grid.
func (m *MazeResource) ResetVisited() {
	if m.Grid == nil {
		m.Visited = nil
		m.VisitedCount = 0
		return
	}
	m.Visited = make([]bool, m.Grid.Width()*m.Grid.Height())
	m.VisitedCount = 0
}

// MarkVisited records a cell as explored. Returns true on first visit.
func (m *MazeResource) MarkVisited(x, y int) bool {
	if m.Grid == nil || !m.Grid.InBounds(x, y) {
		return false
	}
	idx := y*m.Grid.Width() + x
	if m.Visited[idx] {
		return false
	}
	m.Visited[idx] = true
	m.VisitedCount++
	return true
}

// IsVisited reports whether a cell has been explored.
func (m *MazeResource) IsVisited(x, y int) bool {
	if m.Grid == nil || !m.Grid.InBounds(x, y) {
		return false
	}
	return m.Visited[y*m.Grid.Width()+x]
}
