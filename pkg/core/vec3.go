package core

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Vec2 represents a 2D sample point, typically in [0,1)²
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// IsFinite reports whether both components are finite numbers
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Vec3 represents a 3D vector. Hemisphere directions are Vec3 values with Z pointing at the pole.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Divide returns the vector with every component divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// IsFinite reports whether every component is a finite number
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// Point converts the vector to an s2 point on the unit sphere.
// The zero vector has no direction and reports false.
func (v Vec3) Point() (s2.Point, bool) {
	if v.LengthSquared() == 0 || !v.IsFinite() {
		return s2.Point{}, false
	}
	n := v.Normalize()
	return s2.Point{Vector: r3.Vector{X: n.X, Y: n.Y, Z: n.Z}}, true
}

// Elevation returns the angle above the XY plane in radians
func (v Vec3) Elevation() float64 {
	p, ok := v.Point()
	if !ok {
		return 0
	}
	return s2.LatLngFromPoint(p).Lat.Radians()
}

// Azimuth returns the angle around the Z axis in radians, in (-π, π]
func (v Vec3) Azimuth() float64 {
	p, ok := v.Point()
	if !ok {
		return 0
	}
	return s2.LatLngFromPoint(p).Lng.Radians()
}
