package geo

import "math"

// Vec3 is a cartesian coordinate or vector in meters.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Norm() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v Vec3) Normalize() Vec3 {
	if l := v.Norm(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// Outer returns the outer product v ⊗ o.
func (v Vec3) Outer(o Vec3) Tensor {
	return Tensor{
		{v.X * o.X, v.X * o.Y, v.X * o.Z},
		{v.Y * o.X, v.Y * o.Y, v.Y * o.Z},
		{v.Z * o.X, v.Z * o.Y, v.Z * o.Z},
	}
}

func (v Vec3) IsFinite() bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Slice returns the components as [x, y, z].
func (v Vec3) Slice() []float64 { return []float64{v.X, v.Y, v.Z} }

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n < 2 returns a single value at lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
