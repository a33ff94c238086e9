package sequence

import (
	"fmt"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
)

// WhiteNoise draws n independent uniform points in [0,1)². It is the baseline
// the low-discrepancy sets are compared against.
func WhiteNoise(n int, sampler core.Sampler) ([]core.Vec2, error) {
	if n < 0 {
		return nil, fmt.Errorf("white noise point count must be non-negative, got %d", n)
	}
	if n == 0 {
		return nil, nil
	}

	points := make([]core.Vec2, n)
	for i := range points {
		points[i] = sampler.Get2D()
	}
	return points, nil
}
