package engine

import (
	"sort"
	"time"
)

// System is one stage of the per-frame simulation pipeline.
type System interface {
	// Name identifies the system for diagnostics
	Name() string

	// Priority orders execution; lower runs first
	Priority() int

	// Update advances the system by the clamped frame delta
	Update(dt time.Duration)
}

// Pipeline runs registered systems strictly sequentially in priority
// order. Sequential execution is the simulation's only concurrency
// control: no system ever observes another system's partial frame.
type Pipeline struct {
	systems []System
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Register adds a system and re-sorts by priority. Registration order
// breaks ties, so registering is stable and deterministic.
func (p *Pipeline) Register(s System) {
	p.systems = append(p.systems, s)
	sort.SliceStable(p.systems, func(i, j int) bool {
		return p.systems[i].Priority() < p.systems[j].Priority()
	})
}

// Update runs one frame through every system in order.
func (p *Pipeline) Update(dt time.Duration) {
	for _, s := range p.systems {
		s.Update(dt)
	}
}

// Systems returns the registered systems in execution order.
func (p *Pipeline) Systems() []System {
	return p.systems
}
