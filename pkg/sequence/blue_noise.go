package sequence

import (
	"fmt"
	"math"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
)

// MaxBlueNoisePoints bounds BlueNoise; best-candidate generation is cubic in the point count.
const MaxBlueNoisePoints = 1024

// BlueNoise generates n points on the unit torus with Mitchell's best-candidate algorithm.
// Point s is picked from s*candidatesPerSample+1 random candidates as the one farthest
// from its nearest already-placed neighbour, with distances wrapping at the edges.
func BlueNoise(n, candidatesPerSample int, sampler core.Sampler) ([]core.Vec2, error) {
	if n < 0 || n > MaxBlueNoisePoints {
		return nil, fmt.Errorf("blue noise point count must be between 0 and %d, got %d", MaxBlueNoisePoints, n)
	}
	if candidatesPerSample < 1 {
		return nil, fmt.Errorf("candidates per sample must be at least 1, got %d", candidatesPerSample)
	}
	if n == 0 {
		return nil, nil
	}

	points := make([]core.Vec2, 0, n)
	points = append(points, sampler.Get2D())

	for s := 1; s < n; s++ {
		numCandidates := s*candidatesPerSample + 1

		var best core.Vec2
		bestDistance := -1.0
		for c := 0; c < numCandidates; c++ {
			candidate := sampler.Get2D()
			closest := math.MaxFloat64
			for _, p := range points {
				// Squared distance is enough to rank candidates
				if d := toroidalDistanceSquared(p, candidate); d < closest {
					closest = d
				}
			}
			if closest > bestDistance {
				best = candidate
				bestDistance = closest
			}
		}
		points = append(points, best)
	}

	return points, nil
}

// toroidalDistanceSquared measures distance on the unit square with wrapped edges
func toroidalDistanceSquared(a, b core.Vec2) float64 {
	dx := math.Abs(a.X - b.X)
	dy := math.Abs(a.Y - b.Y)
	dx = min(dx, 1-dx)
	dy = min(dy, 1-dy)
	return dx*dx + dy*dy
}
