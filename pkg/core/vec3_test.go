package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"Unit X", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
		{"Scaled Z", NewVec3(0, 0, 5), NewVec3(0, 0, 1)},
		{"Diagonal", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"Zero vector", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec2_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec2
		expected bool
	}{
		{"Finite", NewVec2(0.25, 0.75), true},
		{"NaN X", NewVec2(math.NaN(), 0.5), false},
		{"Inf Y", NewVec2(0.5, math.Inf(1)), false},
		{"Negative Inf X", NewVec2(math.Inf(-1), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.vector.IsFinite() != tt.expected {
				t.Errorf("Expected IsFinite() = %v for %v", tt.expected, tt.vector)
			}
		})
	}
}

func TestVec3_Divide(t *testing.T) {
	v := NewVec3(2, 4, 8).Divide(2)
	if v != NewVec3(1, 2, 4) {
		t.Errorf("Expected (1,2,4), got %v", v)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected ordinary vector to be finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN component to be reported as non-finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected Inf component to be reported as non-finite")
	}
}

func TestVec3_Point(t *testing.T) {
	p, ok := NewVec3(0, 0, 3).Point()
	if !ok {
		t.Fatal("Expected non-zero vector to convert to a point")
	}
	if math.Abs(p.Z-1) > 1e-12 {
		t.Errorf("Expected point to be normalized onto the pole, got %v", p)
	}

	if _, ok := NewVec3(0, 0, 0).Point(); ok {
		t.Error("Expected zero vector to have no point")
	}
}

func TestVec3_ElevationAzimuth(t *testing.T) {
	tests := []struct {
		name      string
		vector    Vec3
		elevation float64
		azimuth   float64
	}{
		{"Pole", NewVec3(0, 0, 1), math.Pi / 2, 0},
		{"Equator +X", NewVec3(1, 0, 0), 0, 0},
		{"Equator +Y", NewVec3(0, 1, 0), 0, math.Pi / 2},
		{"45 degrees up", NewVec3(1, 0, 1), math.Pi / 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if got := tt.vector.Elevation(); math.Abs(got-tt.elevation) > tolerance {
				t.Errorf("Elevation: expected %f, got %f", tt.elevation, got)
			}
			if got := tt.vector.Azimuth(); math.Abs(got-tt.azimuth) > tolerance {
				t.Errorf("Azimuth: expected %f, got %f", tt.azimuth, got)
			}
		})
	}
}
