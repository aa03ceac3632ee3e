package ai

// State is an enemy behavior state.
type State uint8

const (
	// StatePatrol wanders random routes through the maze.
	StatePatrol State = iota
	// StateChase pursues the player with periodic repathing.
	StateChase
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	default:
		return "unknown"
	}
}
