package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := EulerRotation(V3(0.5, 0.25, 0)).Mat4()
	m2 := Translate(V3(1, 2, 3))

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := EulerRotation(V3(0, 0.5, 0)).Mat4().Mul(Translate(V3(1, 2, 3)))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkEulerRotation(b *testing.B) {
	r := V3(0.3, 0.6, 0.9)

	for b.Loop() {
		_ = EulerRotation(r)
	}
}

func BenchmarkTransformUpdate(b *testing.B) {
	var t Transform
	p := V3(1, 2, 3)

	for b.Loop() {
		t.SetPosition(p)
		t.Update()
	}
}

func BenchmarkTransformPositionCached(b *testing.B) {
	t := NewTransform(V3(1, 2, 3), V3(0.3, 0.6, 0.9))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = t.InverseTransformPosition(v)
	}
}

func BenchmarkPlaneCast(b *testing.B) {
	origin := V3(0.1, 0.2, -5)
	dir := V3(0, 0, 1)

	for b.Loop() {
		_, _ = PlaneCast(Forward(), 0.5, origin, dir)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}
