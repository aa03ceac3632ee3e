package component

// WallComponent marks a static maze wall block. Walls are axis-aligned
// squares on the ground plane, centered on their position.
type WallComponent struct {
	HalfSize float64
}
