// Package hemisphere generates deterministic direction sets over the unit hemisphere around +Z.
package hemisphere

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
	"github.com/df07/go-hemisphere-sampler/pkg/sequence"
)

// ErrInvalidParameter is returned for a non-positive step count, an unknown
// strategy, or a missing or short table.
var ErrInvalidParameter = errors.New("invalid parameter")

// zPerturbation is the amplitude of the sinusoidal z offset in UniformZPerturbed
const zPerturbation = 0.1

// Params holds the inputs of a single Generate call
type Params struct {
	StepCount int         // Grid resolution per axis
	Table     []core.Vec2 // Precomputed points for table strategies, indexed like the grid
}

// TotalSamples returns StepCount²
func (p Params) TotalSamples() int {
	return p.StepCount * p.StepCount
}

// GridSize returns the number of grid cells, (StepCount+1)²
func (p Params) GridSize() int {
	return (p.StepCount + 1) * (p.StepCount + 1)
}

// NewParams builds params for a strategy, resolving its table when it needs one.
// table is a built-in table name or a CSV file path; empty selects the strategy's default.
func NewParams(strategy Strategy, steps int, table string) (Params, error) {
	params := Params{StepCount: steps}
	if !strategy.NeedsTable() {
		return params, nil
	}
	if steps < 1 {
		return Params{}, fmt.Errorf("%w: step count must be at least 1, got %d", ErrInvalidParameter, steps)
	}

	if table == "" {
		table = strategy.DefaultTable()
	}
	points, err := sequence.Resolve(table, params.GridSize())
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	params.Table = points
	return params, nil
}

// Count returns how many directions Generate produces for the strategy
func Count(strategy Strategy, params Params) int {
	if strategy.Grid() {
		return params.GridSize()
	}
	return params.TotalSamples() + 1
}

// Validate checks params against the strategy without generating anything
func Validate(strategy Strategy, params Params) error {
	if !strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidParameter, int(strategy))
	}
	if params.StepCount < 1 {
		return fmt.Errorf("%w: step count must be at least 1, got %d", ErrInvalidParameter, params.StepCount)
	}
	if strategy.NeedsTable() {
		if len(params.Table) == 0 {
			return fmt.Errorf("%w: strategy %s requires a table", ErrInvalidParameter, strategy)
		}
		if len(params.Table) < params.GridSize() {
			return fmt.Errorf("%w: strategy %s needs %d table entries for %d steps, got %d",
				ErrInvalidParameter, strategy, params.GridSize(), params.StepCount, len(params.Table))
		}
		for i, row := range params.Table[:params.GridSize()] {
			if !row.IsFinite() {
				return fmt.Errorf("%w: table row %d is not finite: %v", ErrInvalidParameter, i, row)
			}
		}
	}
	return nil
}

// Generate produces the full direction set for a strategy. It is pure: identical
// inputs always give identical output, and nothing is returned on error.
func Generate(strategy Strategy, params Params) ([]core.Vec3, error) {
	if err := Validate(strategy, params); err != nil {
		return nil, err
	}

	directions := make([]core.Vec3, 0, Count(strategy, params))

	if !strategy.Grid() {
		for i := 0; i <= params.TotalSamples(); i++ {
			directions = append(directions, indexDirection(strategy, params, i))
		}
		return directions, nil
	}

	var table *core.TableSampler
	if strategy.NeedsTable() {
		table = core.NewTableSampler(params.Table)
	}
	for y := 0; y <= params.StepCount; y++ {
		for x := 0; x <= params.StepCount; x++ {
			idx := y*(params.StepCount+1) + x
			directions = append(directions, gridDirection(strategy, params, idx, table))
		}
	}
	return directions, nil
}

// indexDirection handles the pole-to-equator ring strategies
func indexDirection(strategy Strategy, params Params, i int) core.Vec3 {
	u0 := float64(i) / float64(params.StepCount)
	u1 := float64(i) / float64(params.TotalSamples())

	dir := core.SampleRingHemisphere(core.NewVec2(u0, u1))
	if strategy == Uniform {
		return dir
	}

	phi := 2.0 * math.Pi * u0
	dir.Z = u1 + math.Sin(phi*2.0*math.Pi)*zPerturbation
	// Scale by the squared length, not the length; see Strategy.Caveat
	return dir.Divide(dir.LengthSquared())
}

// gridDirection handles the strategies laid out on the (steps+1)² grid.
// Table rows are consumed in idx order, so table.Get2D() returns row idx.
func gridDirection(strategy Strategy, params Params, idx int, table *core.TableSampler) core.Vec3 {
	switch strategy {
	case CosineWeightedFromTable:
		return core.SampleCosineHemisphere(table.Get2D())
	case FibonacciSpiral:
		row := table.Get2D()
		sinTheta, cosTheta := math.Sincos(row.X)
		return core.SphericalDirection(sinTheta, cosTheta, row.Y)
	default:
		u0 := float64(idx) / float64(params.StepCount)
		u1 := float64(idx) / float64(params.TotalSamples())
		return core.SampleCosineHemisphere(core.NewVec2(u0, u1))
	}
}

// FibonacciPhi returns the golden-angle azimuth for grid index idx. FibonacciSpiral
// takes its azimuth from the table instead; this is the value a spiral table's
// second column is expected to hold.
func FibonacciPhi(idx int) float64 {
	return core.GoldenAngle * (float64(idx) + 1.0)
}
