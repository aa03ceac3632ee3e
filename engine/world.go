package engine

import (
	"sync"

	"github.com/lixenwraith/neon-maze/component"
	"github.com/lixenwraith/neon-maze/core"
)

// World is the generics-based ECS container. All component stores are
// explicitly typed for compile-time safety and direct system access.
// Entity IDs are monotonic and never reused within a session.
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Component Stores (public for direct system access)
	Positions    *Store[component.PositionComponent]
	Velocities   *Store[component.VelocityComponent]
	Players      *Store[component.PlayerComponent]
	Goals        *Store[component.GoalComponent]
	Collectibles *Store[component.CollectibleComponent]
	Trails       *Store[component.TrailComponent]
	Walls        *Store[component.WallComponent]
	PowerUps     *Store[component.PowerUpComponent]
	Enemies      *Store[component.EnemyComponent]
	AIs          *Store[component.AIComponent]
	Particles    *Store[component.ParticleComponent]
	Animations   *Store[component.AnimationComponent]
	EffectTimers *Store[component.EffectTimerComponent]
	SpeedBoosts  *Store[component.SpeedBoostComponent]
	Shields      *Store[component.ShieldComponent]
	Multipliers  *Store[component.ScoreMultiplierComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	// Cached queries keyed by their store set
	queries map[string]*Query

	// Shared resources (time, input, state, queue, maze)
	Resources *ResourceStore
}

// NewWorld creates an ECS world with all component stores initialized.
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Positions:    NewStore[component.PositionComponent](),
		Velocities:   NewStore[component.VelocityComponent](),
		Players:      NewStore[component.PlayerComponent](),
		Goals:        NewStore[component.GoalComponent](),
		Collectibles: NewStore[component.CollectibleComponent](),
		Trails:       NewStore[component.TrailComponent](),
		Walls:        NewStore[component.WallComponent](),
		PowerUps:     NewStore[component.PowerUpComponent](),
		Enemies:      NewStore[component.EnemyComponent](),
		AIs:          NewStore[component.AIComponent](),
		Particles:    NewStore[component.ParticleComponent](),
		Animations:   NewStore[component.AnimationComponent](),
		EffectTimers: NewStore[component.EffectTimerComponent](),
		SpeedBoosts:  NewStore[component.SpeedBoostComponent](),
		Shields:      NewStore[component.ShieldComponent](),
		Multipliers:  NewStore[component.ScoreMultiplierComponent](),
		queries:      make(map[string]*Query),
		Resources:    NewResourceStore(),
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Velocities,
		w.Players,
		w.Goals,
		w.Collectibles,
		w.Trails,
		w.Walls,
		w.PowerUps,
		w.Enemies,
		w.AIs,
		w.Particles,
		w.Animations,
		w.EffectTimers,
		w.SpeedBoosts,
		w.Shields,
		w.Multipliers,
	}

	return w
}

// CreateEntity reserves a new entity ID without adding any components.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity. Cached
// queries update through store watchers; no rescan needed.
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// DestroyBatch removes all components for multiple entities.
func (w *World) DestroyBatch(entities []core.Entity) {
	for _, e := range entities {
		w.DestroyEntity(e)
	}
}

// EntityCount returns the number of IDs handed out so far, not the count
// of live entities. For accurate counts, query specific stores.
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int(w.nextEntityID - 1)
}

// Clear removes all entities and components. Entity IDs keep advancing;
// IDs are never reused within a session.
func (w *World) Clear() {
	for _, store := range w.allStores {
		store.Clear()
	}
}

// HasAnyComponent checks if an entity has at least one component.
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}
