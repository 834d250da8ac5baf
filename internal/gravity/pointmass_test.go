package gravity

import (
	"errors"
	"math"
	"testing"

	"github.com/arunsk/gravlab/internal/geo"
)

func TestUnitMassUnitDistance(t *testing.T) {
	p := Default()

	obs := geo.Vec3{Z: 1}

	u := p.PotentialAt(obs)
	if math.Abs(u-G) > 1e-22 {
		t.Errorf("expected potential %e, got %e", G, u)
	}

	g := p.FieldAt(obs)
	if math.Abs(g.X) > 1e-22 || math.Abs(g.Y) > 1e-22 {
		t.Errorf("expected purely vertical field, got %v", g)
	}
	if math.Abs(g.Z+G) > 1e-22 {
		t.Errorf("expected g_z = %e, got %e", -G, g.Z)
	}

	// -G*m*(I/r^3 - 3 r⊗r/r^5) at (0,0,1) is diag(-G, -G, 2G)
	grad := p.GradientAt(obs)
	if math.Abs(grad[2][2]-2*G) > 1e-22 {
		t.Errorf("expected T_zz = %e, got %e", 2*G, grad[2][2])
	}
	if math.Abs(grad[0][0]+G) > 1e-22 || math.Abs(grad[1][1]+G) > 1e-22 {
		t.Errorf("expected T_xx = T_yy = %e, got %e and %e", -G, grad[0][0], grad[1][1])
	}
}

func TestFieldPointsTowardSource(t *testing.T) {
	p, err := New(5e6, geo.Vec3{X: 1, Y: -2, Z: 3})
	if err != nil {
		t.Fatal(err)
	}

	obs := geo.Vec3{X: 40, Y: 7, Z: -11}
	g := p.FieldAt(obs)

	toSource := p.Location().Sub(obs).Normalize()
	cos := g.Normalize().Dot(toSource)
	if math.Abs(cos-1) > 1e-12 {
		t.Errorf("expected field antiparallel to displacement, cos = %f", cos)
	}

	r := obs.Sub(p.Location()).Norm()
	want := G * p.Mass() / (r * r)
	if math.Abs(g.Norm()-want) > want*1e-12 {
		t.Errorf("expected |g| = %e, got %e", want, g.Norm())
	}
}

func TestPotentialDecreasesWithDistance(t *testing.T) {
	p, _ := New(1e9, geo.Vec3{})

	prev := math.Inf(1)
	for _, r := range []float64{1, 2, 5, 10, 100} {
		u := p.PotentialAt(geo.Vec3{X: r})
		if u <= 0 {
			t.Errorf("expected positive potential at r=%f, got %e", r, u)
		}
		if u >= prev {
			t.Errorf("expected potential to decrease, got %e >= %e at r=%f", u, prev, r)
		}
		prev = u
	}
}

func TestGradientSymmetricTraceless(t *testing.T) {
	p, _ := New(3.2e7, geo.Vec3{X: -4, Y: 1, Z: 9})

	for _, obs := range []geo.Vec3{
		{X: 1, Y: 2, Z: 3},
		{X: -10, Y: 0.5, Z: -0.1},
		{X: 100, Y: 100, Z: 100},
	} {
		grad := p.GradientAt(obs)
		if !grad.IsSymmetric(1e-25) {
			t.Errorf("expected symmetric gradient at %v", obs)
		}
		scale := math.Abs(grad[0][0]) + math.Abs(grad[1][1]) + math.Abs(grad[2][2])
		if math.Abs(grad.Trace()) > scale*1e-12 {
			t.Errorf("expected traceless gradient at %v, trace = %e", obs, grad.Trace())
		}
	}
}

func TestMassScalingIsLinear(t *testing.T) {
	obs := geo.Vec3{X: 3, Y: -2, Z: 5}
	p1, _ := New(1e8, geo.Vec3{Z: -20})
	p2, _ := New(2e8, geo.Vec3{Z: -20})

	if got, want := p2.PotentialAt(obs), 2*p1.PotentialAt(obs); math.Abs(got-want) > want*1e-12 {
		t.Errorf("expected doubled potential %e, got %e", want, got)
	}
	if got, want := p2.FieldAt(obs).Norm(), 2*p1.FieldAt(obs).Norm(); math.Abs(got-want) > want*1e-12 {
		t.Errorf("expected doubled field %e, got %e", want, got)
	}
	g1 := p1.GradientAt(obs)
	g2 := p2.GradientAt(obs)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(g2[i][j]-2*g1[i][j]) > math.Abs(g1[i][j])*1e-10+1e-30 {
				t.Errorf("expected doubled gradient at (%d,%d)", i, j)
			}
		}
	}
}

func TestBatchShapes(t *testing.T) {
	p := Default()
	xyz := []geo.Vec3{{X: 1}, {Y: 2}, {Z: 3}, {X: 1, Y: 1, Z: 1}}

	if got := p.Potential(xyz); len(got) != len(xyz) {
		t.Errorf("expected %d potentials, got %d", len(xyz), len(got))
	}
	if got := p.Field(xyz); len(got) != len(xyz) {
		t.Errorf("expected %d field vectors, got %d", len(xyz), len(got))
	}
	if got := p.Gradient(xyz); len(got) != len(xyz) {
		t.Errorf("expected %d tensors, got %d", len(xyz), len(got))
	}
}

func TestBatchMatchesScalar(t *testing.T) {
	p, _ := New(7e5, geo.Vec3{X: 0.5})
	xyz := []geo.Vec3{{X: 2, Y: 1, Z: -1}, {X: -3, Y: 0, Z: 4}}

	for i, u := range p.Potential(xyz) {
		if u != p.PotentialAt(xyz[i]) {
			t.Errorf("batch potential %d differs from scalar evaluation", i)
		}
	}
	for i, g := range p.Field(xyz) {
		if g != p.FieldAt(xyz[i]) {
			t.Errorf("batch field %d differs from scalar evaluation", i)
		}
	}
}

func TestSingularityIsNonFinite(t *testing.T) {
	p := Default()

	u := p.PotentialAt(geo.Vec3{})
	if !math.IsInf(u, 1) {
		t.Errorf("expected +Inf potential at source, got %v", u)
	}

	g := p.FieldAt(geo.Vec3{})
	if !math.IsNaN(g.X) && !math.IsInf(g.X, 0) {
		t.Errorf("expected non-finite field at source, got %v", g)
	}
}

func TestSetMassValidation(t *testing.T) {
	p := Default()

	if err := p.SetMass(math.NaN()); !errors.Is(err, ErrMassNotNumber) {
		t.Errorf("expected ErrMassNotNumber for NaN, got %v", err)
	}
	if err := p.SetMass(math.Inf(1)); !errors.Is(err, ErrMassNotNumber) {
		t.Errorf("expected ErrMassNotNumber for +Inf, got %v", err)
	}
	if err := p.SetMass(-5.0); err != nil {
		t.Errorf("expected negative mass to be accepted, got %v", err)
	}
	if err := p.SetMass(0); err != nil {
		t.Errorf("expected zero mass to be accepted, got %v", err)
	}
}

func TestSetLocationSliceValidation(t *testing.T) {
	p := Default()

	if err := p.SetLocationSlice([]float64{1, 2}); !errors.Is(err, ErrLocationShape) {
		t.Errorf("expected ErrLocationShape for 2 components, got %v", err)
	}
	if err := p.SetLocationSlice([]float64{1, 2, 3, 4}); !errors.Is(err, ErrLocationShape) {
		t.Errorf("expected ErrLocationShape for 4 components, got %v", err)
	}
	if err := p.SetLocationSlice([]float64{1, math.NaN(), 3}); !errors.Is(err, ErrLocationNotNumber) {
		t.Errorf("expected ErrLocationNotNumber for NaN component, got %v", err)
	}
	if err := p.SetLocationSlice([]float64{1, 2, 3}); err != nil {
		t.Fatalf("expected valid slice to succeed, got %v", err)
	}
	if p.Location() != (geo.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("expected location (1,2,3), got %v", p.Location())
	}
}

func TestParseMass(t *testing.T) {
	if _, err := ParseMass("abc"); !errors.Is(err, ErrMassNotNumber) {
		t.Errorf("expected ErrMassNotNumber for text, got %v", err)
	}
	if _, err := ParseMass("inf"); !errors.Is(err, ErrMassNotNumber) {
		t.Errorf("expected ErrMassNotNumber for inf, got %v", err)
	}
	v, err := ParseMass(" 2.5e9 ")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if v != 2.5e9 {
		t.Errorf("expected 2.5e9, got %v", v)
	}
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("1, -2, 3.5")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if loc != (geo.Vec3{X: 1, Y: -2, Z: 3.5}) {
		t.Errorf("expected (1,-2,3.5), got %v", loc)
	}

	if _, err := ParseLocation("1,2"); !errors.Is(err, ErrLocationShape) {
		t.Errorf("expected ErrLocationShape, got %v", err)
	}
	if _, err := ParseLocation("1,x,3"); !errors.Is(err, ErrLocationNotNumber) {
		t.Errorf("expected ErrLocationNotNumber, got %v", err)
	}
}
