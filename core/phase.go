package core

// GamePhase is the coarse game lifecycle state exposed to presentation
// adapters. Gameplay systems only run during PhasePlaying; presentation
// adjacent systems (particles, animation) run every frame regardless.
type GamePhase int

const (
	PhaseLoading GamePhase = iota
	PhasePlaying
	PhaseTransitioning
	PhaseGameOver
	PhaseGameWon
)

// String returns the phase name for logs and debug overlays.
func (p GamePhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseGameOver:
		return "gameOver"
	case PhaseGameWon:
		return "gameWon"
	default:
		return "unknown"
	}
}
