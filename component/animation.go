package component

// AnimationComponent drives a looping visual phase (pulse, spin) advanced
// every frame regardless of game phase. Phase wraps in [0, 1).
type AnimationComponent struct {
	Speed float64 // cycles per second
	Phase float64
}
