package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/neon-maze/core"
)

// Query is a cached component intersection, kept current incrementally by
// store watcher callbacks. Defining a query is O(world); membership updates
// afterwards are O(stores) per component change, and reads are O(1) plus a
// lazy re-sort after mutation.
//
// Iteration order is ascending entity ID so system passes are deterministic.
type Query struct {
	mu      sync.RWMutex
	stores  []QueryableStore
	set     map[core.Entity]struct{}
	ordered []core.Entity
	dirty   bool
}

// DefineQuery registers (or returns the existing) cached query over the
// given stores. Calling it twice with the same store set, in any order,
// returns the same *Query.
func (w *World) DefineQuery(stores ...QueryableStore) *Query {
	if len(stores) == 0 {
		panic("query requires at least one store")
	}

	key := queryKey(stores)

	w.mu.Lock()
	defer w.mu.Unlock()

	if q, ok := w.queries[key]; ok {
		return q
	}

	q := &Query{
		stores: stores,
		set:    make(map[core.Entity]struct{}, 64),
	}
	q.rebuild()
	for _, s := range stores {
		s.addWatcher(q)
	}
	w.queries[key] = q
	return q
}

func queryKey(stores []QueryableStore) string {
	kinds := make([]int, len(stores))
	for i, s := range stores {
		kinds[i] = int(s.KindID())
	}
	sort.Ints(kinds)
	return fmt.Sprint(kinds)
}

// rebuild scans the smallest store and filters through the rest. Called
// once at definition; afterwards the watchers keep the set current.
func (q *Query) rebuild() {
	smallest := q.stores[0]
	for _, s := range q.stores[1:] {
		if s.Count() < smallest.Count() {
			smallest = s
		}
	}

	for _, e := range smallest.All() {
		if q.matches(e) {
			q.set[e] = struct{}{}
		}
	}
	q.dirty = true
}

func (q *Query) matches(e core.Entity) bool {
	for _, s := range q.stores {
		if !s.Has(e) {
			return false
		}
	}
	return true
}

// Entities returns the current members in ascending entity order. The
// returned slice is shared; callers must not mutate it and should not hold
// it across component changes.
func (q *Query) Entities() []core.Entity {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.dirty {
		q.ordered = q.ordered[:0]
		for e := range q.set {
			q.ordered = append(q.ordered, e)
		}
		sort.Slice(q.ordered, func(i, j int) bool { return q.ordered[i] < q.ordered[j] })
		q.dirty = false
	}
	return q.ordered
}

// Count returns the current member count.
func (q *Query) Count() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.set)
}

// Contains reports whether an entity is currently a member.
func (q *Query) Contains(e core.Entity) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	_, ok := q.set[e]
	return ok
}

// entityAdded implements storeWatcher. The entity joined one of the
// query's stores; it becomes a member if it now matches all of them.
func (q *Query) entityAdded(e core.Entity) {
	if !q.matches(e) {
		return
	}
	q.mu.Lock()
	if _, ok := q.set[e]; !ok {
		q.set[e] = struct{}{}
		q.dirty = true
	}
	q.mu.Unlock()
}

// entityRemoved implements storeWatcher. Losing any required component
// ends membership.
func (q *Query) entityRemoved(e core.Entity) {
	q.mu.Lock()
	if _, ok := q.set[e]; ok {
		delete(q.set, e)
		q.dirty = true
	}
	q.mu.Unlock()
}
