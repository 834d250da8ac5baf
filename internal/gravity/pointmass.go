package gravity

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arunsk/gravlab/internal/geo"
)

// G is the universal gravitational constant in m^3 kg^-1 s^-2 (CODATA 2018).
const G = 6.6743e-11

// PointMass computes analytic gravitational potentials, fields and gradients
// for an idealized point source. The zero value is unusable; construct with
// New or Default.
//
// Evaluators are pure functions of (mass, location, xyz) and are safe to call
// concurrently as long as no goroutine mutates the source at the same time.
type PointMass struct {
	mass     float64
	location geo.Vec3
}

// Default returns a unit point mass at the origin.
func Default() *PointMass {
	return &PointMass{mass: 1.0}
}

// New returns a point mass with the given mass (kg) and location (m).
// Mass may be zero or negative; negative mass models a density deficit.
func New(mass float64, location geo.Vec3) (*PointMass, error) {
	p := Default()
	if err := p.SetMass(mass); err != nil {
		return nil, err
	}
	p.SetLocation(location)
	return p, nil
}

func (p *PointMass) Mass() float64      { return p.mass }
func (p *PointMass) Location() geo.Vec3 { return p.location }

// SetMass replaces the mass. NaN and ±Inf are rejected; any finite value,
// including zero and negatives, is accepted.
func (p *PointMass) SetMass(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w, got %v", ErrMassNotNumber, v)
	}
	p.mass = v
	return nil
}

// SetLocation replaces the source position.
func (p *PointMass) SetLocation(loc geo.Vec3) {
	p.location = loc
}

// SetLocationSlice sets the location from a flat coordinate slice. The slice
// must hold exactly 3 finite components.
func (p *PointMass) SetLocationSlice(vals []float64) error {
	loc, err := LocationFromSlice(vals)
	if err != nil {
		return err
	}
	p.location = loc
	return nil
}

// LocationFromSlice validates a coordinate slice and converts it to a Vec3.
func LocationFromSlice(vals []float64) (geo.Vec3, error) {
	if len(vals) != 3 {
		return geo.Vec3{}, fmt.Errorf("%w, got %d", ErrLocationShape, len(vals))
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geo.Vec3{}, fmt.Errorf("%w, got %v", ErrLocationNotNumber, v)
		}
	}
	return geo.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// ParseMass coerces a text value to a mass in kg.
func ParseMass(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", ErrMassNotNumber, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w, got %q", ErrMassNotNumber, s)
	}
	return v, nil
}

// ParseLocation coerces text like "0,0,-100" to a location in m.
func ParseLocation(s string) (geo.Vec3, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geo.Vec3{}, fmt.Errorf("%w, got %q", ErrLocationNotNumber, part)
		}
		vals = append(vals, v)
	}
	return LocationFromSlice(vals)
}

// PotentialAt returns the gravitational potential U = G·m/r at xyz, in
// m^2/s^2. At r = 0 the result is +Inf (or NaN for zero mass).
func (p *PointMass) PotentialAt(xyz geo.Vec3) float64 {
	r := xyz.Sub(p.location).Norm()
	return G * p.mass / r
}

// FieldAt returns the gravitational acceleration g = -G·m·r_vec/r^3 at xyz,
// in m/s^2. The vector points from xyz toward the source for positive mass.
func (p *PointMass) FieldAt(xyz geo.Vec3) geo.Vec3 {
	rVec := xyz.Sub(p.location)
	r := rVec.Norm()
	rInv := 1.0 / r
	r3Inv := rInv * rInv * rInv
	return rVec.Scale(-G * p.mass * r3Inv)
}

// GradientAt returns the gravity gradient tensor
// -G·m·(I/r^3 - 3·r_vec⊗r_vec/r^5) at xyz, in 1/s^2. The tensor is symmetric
// and traceless everywhere except the singularity.
func (p *PointMass) GradientAt(xyz geo.Vec3) geo.Tensor {
	rVec := xyz.Sub(p.location)
	r := rVec.Norm()
	rInv := 1.0 / r
	r3Inv := rInv * rInv * rInv
	r5Inv := r3Inv * rInv * rInv
	t := geo.Identity().Scale(r3Inv).Sub(rVec.Outer(rVec).Scale(3 * r5Inv))
	return t.Scale(-G * p.mass)
}

// Potential evaluates PotentialAt over a batch of observation points,
// returning one value per point.
func (p *PointMass) Potential(xyz []geo.Vec3) []float64 {
	out := make([]float64, len(xyz))
	for i, pt := range xyz {
		out[i] = p.PotentialAt(pt)
	}
	return out
}

// Field evaluates FieldAt over a batch of observation points.
func (p *PointMass) Field(xyz []geo.Vec3) []geo.Vec3 {
	out := make([]geo.Vec3, len(xyz))
	for i, pt := range xyz {
		out[i] = p.FieldAt(pt)
	}
	return out
}

// Gradient evaluates GradientAt over a batch of observation points.
func (p *PointMass) Gradient(xyz []geo.Vec3) []geo.Tensor {
	out := make([]geo.Tensor, len(xyz))
	for i, pt := range xyz {
		out[i] = p.GradientAt(pt)
	}
	return out
}
