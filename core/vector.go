package core

import "math"

// Vec3 is a 3D vector in world units. The maze lives on the X/Z plane;
// Y is vertical (jumps, falling particles).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the vector magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared magnitude (cheap comparison form).
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalized returns the unit vector along v, or the zero vector if v is zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// DistXZ returns planar distance to another point, ignoring Y.
// Gameplay radii (chase trigger, pickup, contact) are all planar.
func (v Vec3) DistXZ(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// DistSqXZ returns squared planar distance (cheap comparison form).
func (v Vec3) DistSqXZ(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return dx*dx + dz*dz
}
