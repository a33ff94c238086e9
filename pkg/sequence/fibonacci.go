package sequence

import (
	"math"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
)

// FibonacciTable returns n (theta, phi) rows of a cosine-weighted Fibonacci spiral.
// sin²θ grows linearly with the index so each row covers an equal projected-disk area;
// phi advances by the golden angle. The last row lands on the equator (θ = π/2).
func FibonacciTable(n int) []core.Vec2 {
	if n <= 0 {
		return nil
	}

	rows := make([]core.Vec2, n)
	for s := range rows {
		sin2 := (float64(s) + 0.5) / (float64(n) - 0.5)
		if sin2 > 1 {
			sin2 = 1
		}
		cosTheta := math.Sqrt(1.0 - sin2)
		phi := core.GoldenAngle * (float64(s) + 1.0)
		rows[s] = core.NewVec2(math.Acos(cosTheta), phi)
	}
	return rows
}

// FibonacciSpiral2D returns n points of a sunflower spiral on the unit disk,
// mapped into [0,1)². Point s sits at radius √(s/n) and turns by 2π·s/φ.
func FibonacciSpiral2D(n int) []core.Vec2 {
	if n <= 0 {
		return nil
	}

	points := make([]core.Vec2, n)
	for s := range points {
		r := math.Sqrt(float64(s) / float64(n))
		sinTheta, cosTheta := math.Sincos(2 * math.Pi * float64(s) / math.Phi)
		points[s] = core.NewVec2((r*cosTheta+1)/2, (r*sinTheta+1)/2)
	}
	return points
}
