package survey

import (
	"github.com/arunsk/gravlab/internal/geo"
	"github.com/arunsk/gravlab/internal/gravity"
)

// Grid describes a rectangular observation plane at constant height Z,
// the usual geometry for an airborne or ground gravity survey.
type Grid struct {
	XMin, XMax float64
	YMin, YMax float64
	Z          float64
	NX, NY     int
}

// Points returns the grid nodes in row-major order: y varies slowest.
func (g Grid) Points() []geo.Vec3 {
	xs := geo.Linspace(g.XMin, g.XMax, g.NX)
	ys := geo.Linspace(g.YMin, g.YMax, g.NY)
	pts := make([]geo.Vec3, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			pts = append(pts, geo.Vec3{X: x, Y: y, Z: g.Z})
		}
	}
	return pts
}

// At returns the node at column i, row j.
func (g Grid) At(pts []geo.Vec3, i, j int) geo.Vec3 {
	return pts[j*g.NX+i]
}

// Profile describes a straight line of observation points, typically used
// for distance-vs-value plots across a target.
type Profile struct {
	Start, End geo.Vec3
	N          int
}

// Points returns N evenly spaced points from Start to End inclusive.
func (p Profile) Points() []geo.Vec3 {
	if p.N < 2 {
		return []geo.Vec3{p.Start}
	}
	pts := make([]geo.Vec3, p.N)
	step := p.End.Sub(p.Start).Scale(1 / float64(p.N-1))
	for i := range pts {
		pts[i] = p.Start.Add(step.Scale(float64(i)))
	}
	pts[p.N-1] = p.End
	return pts
}

// Distances returns the along-line distance of each profile point from Start.
func (p Profile) Distances() []float64 {
	pts := p.Points()
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.Sub(p.Start).Norm()
	}
	return out
}

// Result holds a forward-modeled survey: the observation points and the
// three gravity quantities evaluated at each of them.
type Result struct {
	Points    []geo.Vec3
	Potential []float64
	Field     []geo.Vec3
	Gradient  []geo.Tensor
}

// Run evaluates all three quantities of src at every point.
func Run(src *gravity.PointMass, pts []geo.Vec3) *Result {
	return &Result{
		Points:    pts,
		Potential: src.Potential(pts),
		Field:     src.Field(pts),
		Gradient:  src.Gradient(pts),
	}
}

// FieldMagnitudes returns |g| per observation point.
func (r *Result) FieldMagnitudes() []float64 {
	out := make([]float64, len(r.Field))
	for i, g := range r.Field {
		out[i] = g.Norm()
	}
	return out
}

// VerticalField returns g_z per observation point, the component a gravimeter
// measures.
func (r *Result) VerticalField() []float64 {
	out := make([]float64, len(r.Field))
	for i, g := range r.Field {
		out[i] = g.Z
	}
	return out
}
