package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/neon-maze/core"
)

// kindCounter hands out stable store identities for query keys.
var kindCounter atomic.Uint32

// storeWatcher observes membership changes on a store. Queries implement
// this to stay current without rescanning.
type storeWatcher interface {
	entityAdded(e core.Entity)
	entityRemoved(e core.Entity)
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity // Array of entities that have this component
	kind       uint32
	watchers   []storeWatcher
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
		kind:       kindCounter.Add(1),
	}
}

// KindID returns the store's unique identity for query registration.
func (s *Store[T]) KindID() uint32 {
	return s.kind
}

func (s *Store[T]) addWatcher(w storeWatcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, w)
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	_, exists := s.components[e]
	if !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
	watchers := s.watchers
	s.mu.Unlock()

	// Notify outside the lock; watchers may call back into Has
	if !exists {
		for _, w := range watchers {
			w.entityAdded(e)
		}
	}
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	_, exists := s.components[e]
	if exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
	watchers := s.watchers
	s.mu.Unlock()

	if exists {
		for _, w := range watchers {
			w.entityRemoved(e)
		}
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	removed := s.entities
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
	watchers := s.watchers
	s.mu.Unlock()

	for _, e := range removed {
		for _, w := range watchers {
			w.entityRemoved(e)
		}
	}
}

// RemoveBatch deletes multiple entities in a single pass - O(n+m) vs O(n*m) for individual removes
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	if len(s.components) == 0 {
		s.mu.Unlock()
		return
	}

	removed := make([]core.Entity, 0, len(entities))
	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			removed = append(removed, e)
			delete(s.components, e)
		}
	}

	if len(toRemove) == 0 {
		s.mu.Unlock()
		return
	}

	// Single pass compaction of entities slice
	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
	watchers := s.watchers
	s.mu.Unlock()

	for _, e := range removed {
		for _, w := range watchers {
			w.entityRemoved(e)
		}
	}
}
