package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance used by Approximately.
const Epsilon float32 = 1.1920929e-07

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
// NaN is returned for x outside [-1, 1].
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return mgl32.Abs(x)
}

// Clamp limits x to the range [lo, hi]. NaN passes through unchanged.
func Clamp(x, lo, hi float32) float32 {
	return mgl32.Clamp(x, lo, hi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return mgl32.RadToDeg(rad)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsNaN reports whether x is NaN.
func IsNaN(x float32) bool {
	return x != x
}

// Approximately reports whether a and b differ by less than Epsilon.
func Approximately(a, b float32) bool {
	return Abs(a-b) < Epsilon
}

// Lerp interpolates between a and b by t. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return (b-a)*t + a
}

// EuclidMod returns a mod b, always in [0, |b|) for finite inputs.
func EuclidMod(a, b float32) float32 {
	r := float32(math.Mod(float64(a), float64(b)))
	if r < 0 {
		r += Abs(b)
	}
	return r
}
