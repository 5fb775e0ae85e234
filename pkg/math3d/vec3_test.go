package math3d

import (
	"math"
	"testing"
)

const tol = 1e-5

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %v, want (5, 7, 9)", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %v, want (3, 3, 3)", got)
	}
	if got := a.Mul(b); got != V3(4, 10, 18) {
		t.Errorf("Mul = %v, want (4, 10, 18)", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale = %v, want (2, 4, 6)", got)
	}
	if got := a.Negate(); got != V3(-1, -2, -3) {
		t.Errorf("Negate = %v, want (-1, -2, -3)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := V3(-1, 2, -3).Abs(); got != V3(1, 2, 3) {
		t.Errorf("Abs = %v, want (1, 2, 3)", got)
	}
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := V3(3, 4, 0).LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"right x up", Right(), Up(), Forward()},
		{"up x forward", Up(), Forward(), Right()},
		{"forward x right", Forward(), Right(), Up()},
		{"parallel", V3(1, 2, 3), V3(2, 4, 6), Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); !got.Approx(tc.want, tol) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(0, 3, 4).Normalize()
	if !n.Approx(V3(0, 0.6, 0.8), tol) {
		t.Errorf("got %v, want (0, 0.6, 0.8)", n)
	}

	z := Zero3().Normalize()
	if z.IsFinite() {
		t.Errorf("zero vector normalized to %v, want NaN components", z)
	}
}

func TestVec3Angle(t *testing.T) {
	got := Right().Angle(Up())
	if math.Abs(float64(got)-math.Pi/2) > tol {
		t.Errorf("got %v, want pi/2", got)
	}

	if a := Zero3().Angle(Up()); !IsNaN(a) {
		t.Errorf("angle with zero vector = %v, want NaN", a)
	}
}

func TestVec3Components(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		if got := v.Component(i); got != want {
			t.Errorf("Component(%d) = %v, want %v", i, got, want)
		}
	}

	if got := v.WithComponent(1, 9); got != V3(1, 9, 3) {
		t.Errorf("WithComponent = %v, want (1, 9, 3)", got)
	}
	if v != V3(1, 2, 3) {
		t.Errorf("WithComponent mutated receiver: %v", v)
	}
}

func TestVec3Distance(t *testing.T) {
	a := V3(1, 1, 1)
	b := V3(1, 4, 5)
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.DistanceSq(b); got != 25 {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
	if got := a.Lerp(b, 0.5); !got.Approx(V3(1, 2.5, 3), tol) {
		t.Errorf("Lerp = %v, want (1, 2.5, 3)", got)
	}
}
