package hemisphere

import (
	"math"
	"testing"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
	"github.com/df07/go-hemisphere-sampler/pkg/sequence"
)

func TestAnalyze_SimpleSet(t *testing.T) {
	directions := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 0),
	}

	stats := Analyze(directions, 2)

	if stats.Count != 3 {
		t.Errorf("Expected count 3, got %d", stats.Count)
	}
	if stats.Degenerate != 1 {
		t.Errorf("Expected 1 degenerate direction, got %d", stats.Degenerate)
	}

	const tolerance = 1e-12
	if math.Abs(stats.MeanZ-0.5) > tolerance {
		t.Errorf("Expected mean z 0.5, got %f", stats.MeanZ)
	}
	if math.Abs(stats.MinSeparation-math.Pi/2) > tolerance {
		t.Errorf("Expected min separation π/2, got %f", stats.MinSeparation)
	}
	if math.Abs(stats.MeanElevation-math.Pi/4) > tolerance {
		t.Errorf("Expected mean elevation π/4, got %f", stats.MeanElevation)
	}
	if len(stats.ZHistogram) != 2 || stats.ZHistogram[0] != 1 || stats.ZHistogram[1] != 1 {
		t.Errorf("Expected histogram [1 1], got %v", stats.ZHistogram)
	}
}

func TestAnalyze_BelowHorizon(t *testing.T) {
	stats := Analyze([]core.Vec3{core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)}, 4)

	if stats.BelowHorizon != 1 {
		t.Errorf("Expected 1 direction below the horizon, got %d", stats.BelowHorizon)
	}

	total := 0.0
	for _, c := range stats.ZHistogram {
		total += c
	}
	if total != 1 {
		t.Errorf("Expected only the in-range direction in the histogram, got total %f", total)
	}
}

func TestAnalyze_CosineWeighted(t *testing.T) {
	directions, err := Generate(CosineWeightedFromTable, Params{StepCount: 7, Table: sequence.BlueNoiseTable64})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := Analyze(directions, DefaultHistogramBins)

	if stats.Count != 64 {
		t.Errorf("Expected 64 directions, got %d", stats.Count)
	}
	if stats.BelowHorizon != 0 || stats.AboveUnitZ != 0 || stats.Degenerate != 0 {
		t.Errorf("Expected all directions inside the hemisphere, got %+v", stats)
	}
	if stats.MaxLengthError > 1e-9 {
		t.Errorf("Expected unit directions, max length error %g", stats.MaxLengthError)
	}
	if stats.MinSeparation <= 0 {
		t.Errorf("Expected distinct directions, min separation %f", stats.MinSeparation)
	}

	total := 0.0
	for _, c := range stats.ZHistogram {
		total += c
	}
	if total != 64 {
		t.Errorf("Expected histogram to hold all 64 directions, got %f", total)
	}
}

func TestAnalyze_UniformZPerturbedFlagsLength(t *testing.T) {
	directions, err := Generate(UniformZPerturbed, Params{StepCount: 7})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := Analyze(directions, 0)
	if stats.MaxLengthError < 1e-3 {
		t.Errorf("Expected squared-length scaling to leave non-unit directions, max error %g", stats.MaxLengthError)
	}
	if len(stats.ZHistogram) != DefaultHistogramBins {
		t.Errorf("Expected default bin count %d, got %d", DefaultHistogramBins, len(stats.ZHistogram))
	}
}

func TestAnalyze_Empty(t *testing.T) {
	stats := Analyze(nil, 3)
	if stats.Count != 0 || stats.MinSeparation != 0 || stats.MeanZ != 0 {
		t.Errorf("Expected zero stats for no directions, got %+v", stats)
	}
}
