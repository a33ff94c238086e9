package hemisphere

import (
	"fmt"
	"strings"

	"github.com/df07/go-hemisphere-sampler/pkg/sequence"
)

// Strategy selects how Generate lays out directions over the hemisphere
type Strategy int

const (
	// Uniform walks rings from the pole to the equator with z stepping linearly
	Uniform Strategy = iota
	// UniformZPerturbed is Uniform with a sinusoidal z offset and squared-length scaling
	UniformZPerturbed
	// CosineWeighted maps a stratified grid through the cosine-weighted disk projection
	CosineWeighted
	// CosineWeightedFromTable is CosineWeighted fed from a caller-supplied 2D point table
	CosineWeightedFromTable
	// FibonacciSpiral reads (theta, phi) rows from a caller-supplied spiral table
	FibonacciSpiral
)

var strategyNames = map[Strategy]string{
	Uniform:                 "uniform",
	UniformZPerturbed:       "uniform-z-perturbed",
	CosineWeighted:          "cosine",
	CosineWeightedFromTable: "cosine-table",
	FibonacciSpiral:         "fibonacci",
}

// Strategies lists every strategy in declaration order
func Strategies() []Strategy {
	return []Strategy{Uniform, UniformZPerturbed, CosineWeighted, CosineWeightedFromTable, FibonacciSpiral}
}

// String returns the command-line name of the strategy
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy with the given command-line name
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	names := make([]string, 0, len(strategyNames))
	for _, s := range Strategies() {
		names = append(names, s.String())
	}
	return 0, fmt.Errorf("%w: unknown strategy %q (available: %s)", ErrInvalidParameter, name, strings.Join(names, ", "))
}

// Valid reports whether s is one of the declared strategies
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// Grid reports whether the strategy iterates a (steps+1)² grid rather than steps²+1 indices
func (s Strategy) Grid() bool {
	switch s {
	case CosineWeighted, CosineWeightedFromTable, FibonacciSpiral:
		return true
	default:
		return false
	}
}

// NeedsTable reports whether the strategy reads a precomputed point table
func (s Strategy) NeedsTable() bool {
	return s == CosineWeightedFromTable || s == FibonacciSpiral
}

// Normalizes reports whether every produced direction is a unit vector
func (s Strategy) Normalizes() bool {
	return s != Uniform && s != UniformZPerturbed
}

// DefaultTable names the built-in table a table strategy uses when none is given
func (s Strategy) DefaultTable() string {
	switch s {
	case CosineWeightedFromTable:
		return sequence.TableBlueNoise
	case FibonacciSpiral:
		return sequence.TableFibonacci
	default:
		return ""
	}
}

// Caveat describes known quirks of the strategy's output, or "" when there are none
func (s Strategy) Caveat() string {
	switch s {
	case Uniform:
		return "uniform rings step z linearly, so samples are monotonic in elevation but not area-uniform"
	case UniformZPerturbed:
		return "components are divided by x²+y²+z² rather than its square root, so directions are not unit length"
	case FibonacciSpiral:
		return "azimuth comes from the table's second column; the golden-angle phi is not applied"
	default:
		return ""
	}
}
