package core

// Entity is a unique identifier naming a bundle of components.
// Identifiers are allocated monotonically and never reused while the
// world that issued them is alive; a lookup against a destroyed entity
// reports absence rather than aliasing a newer entity.
type Entity uint64

// EntityNone is the zero value, never issued by a world.
const EntityNone Entity = 0
