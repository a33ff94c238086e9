package hemisphere

import (
	"math"

	"github.com/df07/go-hemisphere-sampler/pkg/core"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"go-hep.org/x/hep/hbook"
)

// DefaultHistogramBins is the elevation histogram resolution used when none is given
const DefaultHistogramBins = 10

// Stats summarizes a generated direction set
type Stats struct {
	Count          int       `json:"count"`
	MeanZ          float64   `json:"meanZ"`
	MaxLengthError float64   `json:"maxLengthError"` // max | |v| - 1 |
	BelowHorizon   int       `json:"belowHorizon"`   // directions with z < 0
	AboveUnitZ     int       `json:"aboveUnitZ"`     // directions with z > 1
	Degenerate     int       `json:"degenerate"`     // zero-length or non-finite directions
	MinSeparation  float64   `json:"minSeparation"`  // smallest angle between two directions, radians
	MeanElevation  float64   `json:"meanElevation"`  // radians above the XY plane
	ZHistogram     []float64 `json:"zHistogram"`     // counts of z in equal bins over [0,1]
}

// Analyze computes Stats for directions, binning z into the given number of bins
func Analyze(directions []core.Vec3, bins int) Stats {
	if bins < 1 {
		bins = DefaultHistogramBins
	}

	stats := Stats{Count: len(directions)}
	hist := hbook.NewH1D(bins, 0, 1)
	points := make([]s2.Point, 0, len(directions))
	zSum, elevationSum := 0.0, 0.0

	for _, dir := range directions {
		if dir.Z < 0 {
			stats.BelowHorizon++
		}
		if dir.Z > 1 {
			stats.AboveUnitZ++
		}

		p, ok := dir.Point()
		if !ok {
			stats.Degenerate++
			continue
		}

		stats.MaxLengthError = math.Max(stats.MaxLengthError, math.Abs(dir.Length()-1.0))
		// The pole belongs to the top bin rather than overflow
		zBin := dir.Z
		if zBin == 1 {
			zBin = math.Nextafter(1, 0)
		}
		hist.Fill(zBin, 1)
		zSum += dir.Z
		points = append(points, p)
		elevationSum += s2.LatLngFromPoint(p).Lat.Radians()
	}

	if len(points) > 0 {
		stats.MeanZ = zSum / float64(len(points))
		stats.MeanElevation = elevationSum / float64(len(points))
	}

	stats.ZHistogram = make([]float64, bins)
	for i, bin := range hist.Binning.Bins {
		stats.ZHistogram[i] = bin.SumW()
	}

	stats.MinSeparation = minSeparation(points).Radians()
	return stats
}

// minSeparation returns the smallest angle between any two points, or 0 for fewer than two
func minSeparation(points []s2.Point) s1.Angle {
	if len(points) < 2 {
		return 0
	}
	best := s1.InfAngle()
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].Distance(points[j]); d < best {
				best = d
			}
		}
	}
	return best
}
