package sequence

import (
	"fmt"
	"math"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
)

// DefaultSeed is the additive offset used by the R sequences. 0.5 spreads the
// first points better than 0.
const DefaultSeed = 0.5

// Phi returns the generalized golden ratio for d dimensions: the unique positive
// root of x^(d+1) = x + 1. Phi(1) is the golden ratio, Phi(2) the plastic number.
func Phi(d int) float64 {
	x := 2.0
	for i := 0; i < 64; i++ {
		next := math.Pow(1.0+x, 1.0/float64(d+1))
		if math.Abs(next-x) < 1e-15 {
			return next
		}
		x = next
	}
	return x
}

// Alphas returns the per-dimension increments (1/g)^(j+1) mod 1 of the R_d sequence
func Alphas(d int) []float64 {
	g := Phi(d)
	alpha := make([]float64, d)
	for j := range alpha {
		alpha[j] = frac(math.Pow(1.0/g, float64(j+1)))
	}
	return alpha
}

// Rd returns n points of the d-dimensional additive recurrence
// z[i] = (seed + alpha*(i+1)) mod 1.
func Rd(n, d int, seed float64) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("point count must be non-negative, got %d", n)
	}
	if d < 1 {
		return nil, fmt.Errorf("dimension must be at least 1, got %d", d)
	}

	alpha := Alphas(d)
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, d)
		for j := range p {
			p[j] = frac(seed + alpha[j]*float64(i+1))
		}
		points[i] = p
	}
	return points, nil
}

// R2 returns n points of the two-dimensional R sequence
func R2(n int, seed float64) []core.Vec2 {
	if n <= 0 {
		return nil
	}
	alpha := Alphas(2)
	points := make([]core.Vec2, n)
	for i := range points {
		points[i] = core.NewVec2(
			frac(seed+alpha[0]*float64(i+1)),
			frac(seed+alpha[1]*float64(i+1)),
		)
	}
	return points
}

// Quantize snaps every point down onto a resolution x resolution grid
func Quantize(points []core.Vec2, resolution int) []core.Vec2 {
	res := float64(resolution)
	out := make([]core.Vec2, len(points))
	for i, p := range points {
		out[i] = core.NewVec2(math.Floor(p.X*res)/res, math.Floor(p.Y*res)/res)
	}
	return out
}

// frac returns the fractional part of x in [0,1), also for negative x
func frac(x float64) float64 {
	return x - math.Floor(x)
}
