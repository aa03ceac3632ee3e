package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameDeltaMax caps the per-frame elapsed time handed to the pipeline.
	// Protects integration stability after frame hitches (tab suspend, GC pause).
	FrameDeltaMax = 100 * time.Millisecond

	// FrameUpdateInterval is the nominal display refresh interval (~60 FPS)
	// used by the reference front-ends to drive Step.
	FrameUpdateInterval = 16 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Progression
const (
	// VictoryLevel is the level at which reaching the goal wins the game
	VictoryLevel = 20

	// LevelTransitionDelay is the pause between goal arrival and the next
	// level being built. Scheduled work, cancelled by restart.
	LevelTransitionDelay = 1500 * time.Millisecond
)
