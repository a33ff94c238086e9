package sequence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
)

// ErrUnknownTable is returned by Lookup for names it does not know
var ErrUnknownTable = errors.New("unknown table")

// Seeds for generated random tables so lookups are repeatable
const (
	BlueNoiseSeed  = 1
	WhiteNoiseSeed = 2
)

// Built-in table names accepted by Lookup
const (
	TableBlueNoise   = "blue-noise"
	TableGoldenRatio = "golden-ratio"
	TableR2          = "r2"
	TableFibonacci   = "fibonacci"
	TableWhiteNoise  = "white-noise"
	TableFibonacci2D = "fibonacci-2d"
)

// TableNames lists the built-in tables in display order
func TableNames() []string {
	return []string{TableBlueNoise, TableGoldenRatio, TableR2, TableFibonacci, TableWhiteNoise, TableFibonacci2D}
}

// MaxPoints returns the largest table Lookup can build for name, or 0 when the
// size is unbounded or the name is unknown.
func MaxPoints(name string) int {
	if name == TableBlueNoise {
		return MaxBlueNoisePoints
	}
	return 0
}

// Generated blue noise is deterministic and every smaller set is a prefix of a
// larger one, so only the largest set built so far is kept.
var blueNoiseCache struct {
	sync.Mutex
	points []core.Vec2
}

func generatedBlueNoise(n int) ([]core.Vec2, error) {
	blueNoiseCache.Lock()
	defer blueNoiseCache.Unlock()

	if n > len(blueNoiseCache.points) {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(BlueNoiseSeed)))
		points, err := BlueNoise(n, 1, sampler)
		if err != nil {
			return nil, err
		}
		blueNoiseCache.points = points
	}
	return clonePrefix(blueNoiseCache.points, n), nil
}

// Lookup returns the first n points of a built-in table.
// blue-noise and golden-ratio use the fixed 64-point sets when they are large enough.
// Larger blue-noise sets are generated once and reused.
func Lookup(name string, n int) ([]core.Vec2, error) {
	if n < 0 {
		return nil, fmt.Errorf("table size must be non-negative, got %d", n)
	}

	switch name {
	case TableBlueNoise:
		if n <= len(BlueNoiseTable64) {
			return clonePrefix(BlueNoiseTable64, n), nil
		}
		return generatedBlueNoise(n)
	case TableGoldenRatio:
		if n <= len(GoldenRatioTable64) {
			return clonePrefix(GoldenRatioTable64, n), nil
		}
		return R2(n, DefaultSeed), nil
	case TableR2:
		return R2(n, DefaultSeed), nil
	case TableFibonacci:
		return FibonacciTable(n), nil
	case TableWhiteNoise:
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(WhiteNoiseSeed)))
		return WhiteNoise(n, sampler)
	case TableFibonacci2D:
		return FibonacciSpiral2D(n), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTable, name, strings.Join(TableNames(), ", "))
	}
}

// IsBuiltin reports whether name refers to a built-in table
func IsBuiltin(name string) bool {
	for _, n := range TableNames() {
		if n == name {
			return true
		}
	}
	return false
}

// LoadTable reads a two-column CSV table. A first row where neither column is
// a number is treated as a header and skipped. Values must be finite.
func LoadTable(r io.Reader) ([]core.Vec2, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var points []core.Vec2
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read table: %v", err)
		}
		line++

		if len(record) < 2 {
			return nil, fmt.Errorf("table row %d: expected 2 columns, got %d", line, len(record))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if line == 1 && errX != nil && errY != nil {
			continue
		}
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("table row %d: invalid number in %v", line, record)
		}
		point := core.NewVec2(x, y)
		if !point.IsFinite() {
			return nil, fmt.Errorf("table row %d: values must be finite, got %v", line, record)
		}
		points = append(points, point)
	}
	return points, nil
}

// LoadTableFile reads a two-column CSV table from disk
func LoadTableFile(path string) ([]core.Vec2, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table file: %v", err)
	}
	defer file.Close()
	return LoadTable(file)
}

// Resolve returns a built-in table by name, or loads the table from a file path otherwise
func Resolve(nameOrPath string, n int) ([]core.Vec2, error) {
	if IsBuiltin(nameOrPath) {
		return Lookup(nameOrPath, n)
	}
	return LoadTableFile(nameOrPath)
}

func clonePrefix(points []core.Vec2, n int) []core.Vec2 {
	out := make([]core.Vec2, n)
	copy(out, points[:n])
	return out
}
