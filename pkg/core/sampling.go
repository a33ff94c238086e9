package core

import (
	"math"
	"math/rand"
)

// GoldenAngle is the angle between successive points of a Fibonacci spiral, π(3-√5)
var GoldenAngle = math.Pi * (3.0 - math.Sqrt(5.0))

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// TableSampler replays a fixed list of 2D points in order, wrapping around at the end.
// Get1D consumes the X component of the next point.
type TableSampler struct {
	points []Vec2
	next   int
}

// NewTableSampler creates a sampler over a precomputed point table
func NewTableSampler(points []Vec2) *TableSampler {
	return &TableSampler{points: points}
}

// Len returns the number of points in the table
func (t *TableSampler) Len() int {
	return len(t.points)
}

// Get1D returns the X component of the next table point
func (t *TableSampler) Get1D() float64 {
	return t.Get2D().X
}

// Get2D returns the next table point. An empty table yields zeros.
func (t *TableSampler) Get2D() Vec2 {
	if len(t.points) == 0 {
		return Vec2{}
	}
	p := t.points[t.next]
	t.next = (t.next + 1) % len(t.points)
	return p
}

// Reset rewinds the sampler to the first table point
func (t *TableSampler) Reset() {
	t.next = 0
}

// SphericalDirection converts spherical angles to a direction with Z as the pole
func SphericalDirection(sinTheta, cosTheta, phi float64) Vec3 {
	return NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// SampleRingHemisphere maps two sample values to a direction whose height is exactly sample.Y.
// sample.X sets the azimuth as a fraction of a full turn.
func SampleRingHemisphere(sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	theta := math.Acos(sample.Y)
	return NewVec3(math.Sin(theta)*math.Cos(phi), math.Sin(theta)*math.Sin(phi), sample.Y)
}

// SampleCosineHemisphere maps two sample values to a cosine-weighted direction around +Z.
// sample.Y is clamped to [0,1] so the result is always a unit vector with Z >= 0.
func SampleCosineHemisphere(sample Vec2) Vec3 {
	// Generate point in unit disk, then project up onto the hemisphere
	a := 2.0 * math.Pi * sample.X
	z := max(0, min(1, sample.Y))
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	return NewVec3(x, y, zCoord)
}
