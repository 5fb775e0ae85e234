package math3d

import "testing"

func TestTranslate(t *testing.T) {
	got := Translate(V3(0.5, 3, -2.5)).MulVec3(One3())
	if !got.Approx(V3(1.5, 4, -1.5), tol) {
		t.Errorf("got %v, want (1.5, 4, -1.5)", got)
	}

	dir := Translate(V3(0.5, 3, -2.5)).MulVec3Dir(One3())
	if dir != One3() {
		t.Errorf("MulVec3Dir = %v, want translation ignored", dir)
	}

	if tr := Translate(V3(1, 2, 3)).Translation(); tr != V3(1, 2, 3) {
		t.Errorf("Translation = %v, want (1, 2, 3)", tr)
	}
}

func TestScaleMat3(t *testing.T) {
	got := ScaleMat3(V3(-1, 2, 0)).MulVec3(One3())
	if got != V3(-1, 2, 0) {
		t.Errorf("got %v, want (-1, 2, 0)", got)
	}
	if d := ScaleMat3(V3(2, 3, 4)).Determinant(); d != 24 {
		t.Errorf("Determinant = %v, want 24", d)
	}
}

func TestMat4Mul(t *testing.T) {
	a := Translate(V3(1, 0, 0))
	b := Translate(V3(0, 2, 0))
	if got := a.Mul(b).Translation(); got != V3(1, 2, 0) {
		t.Errorf("translation composition = %v, want (1, 2, 0)", got)
	}
	if got := Identity4().Mul(a); got != a {
		t.Errorf("identity * a = %v, want %v", got, a)
	}
}

func TestMat3Mat4RoundTrip(t *testing.T) {
	m := EulerRotation(V3(0.1, 0.2, 0.3))
	m4 := m.Mat4()
	if m4[15] != 1 || m4.Translation() != Zero3() {
		t.Errorf("Mat4 embedding has bad affine row/translation: %v", m4)
	}
	if got := m4.Mat3(); got != m {
		t.Errorf("Mat3() = %v, want %v", got, m)
	}

	var s Mat3
	s.Set(1, 2, 7)
	if s.Get(1, 2) != 7 || s[5] != 7 {
		t.Errorf("Set/Get row-major mismatch: %v", s)
	}
}
