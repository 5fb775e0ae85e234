package math3d

import (
	"math"
	"testing"
)

func TestEuclidMod(t *testing.T) {
	tests := []struct {
		name string
		a, b float32
		want float32
	}{
		{"positive", 2.25, 1, 0.25},
		{"negative", -0.25, 1, 0.75},
		{"negative whole", -3, 1, 0},
		{"negative divisor", -0.5, -2, 1.5},
		{"zero", 0, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EuclidMod(tc.a, tc.b)
			if math.Abs(float64(got-tc.want)) > tol {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0); got != 2 {
		t.Errorf("Lerp(t=0) = %v, want 2", got)
	}
	if got := Lerp(2, 6, 1); got != 6 {
		t.Errorf("Lerp(t=1) = %v, want 6", got)
	}
	if got := Lerp(2, 6, 1.5); got != 8 {
		t.Errorf("Lerp(t=1.5) = %v, want 8 (unclamped)", got)
	}
}

func TestIsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	if !IsFinite(1) {
		t.Error("IsFinite(1) = false")
	}
	if IsFinite(nan) || IsFinite(inf) || IsFinite(-inf) {
		t.Error("IsFinite accepted NaN or Inf")
	}
	if !IsNaN(nan) || IsNaN(inf) {
		t.Error("IsNaN misclassified")
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(float64(got)-math.Pi) > tol {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(math.Pi / 2); math.Abs(float64(got)-90) > 1e-3 {
		t.Errorf("RadToDeg(pi/2) = %v, want 90", got)
	}
	if !Approximately(0.1+0.2, 0.3) {
		t.Error("Approximately(0.1+0.2, 0.3) = false")
	}
}
