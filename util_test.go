package nurbs

import (
	"testing"

	"github.com/AliceRemake/NURBS/internal"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

const eps = internal.MachineEpsilon

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(margin, margin)
}

func distance(a, b vec3.T) float64 {
	return vec3.Distance(&a, &b)
}

func requireDomainPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		if _, ok := r.(*DomainError); !ok {
			t.Fatalf("expected *DomainError, got %T: %v", r, r)
		}
	}()
	f()
}

// quadCurve is a rational quadratic Bezier arc.
func quadCurve(t *testing.T) *NurbsCurve {
	t.Helper()
	crv, err := NewNurbsCurve(2,
		[]vec3.T{{-1, 0, 0}, {0, 1, 0}, {1, 0, 0}},
		[]float64{1, 2, 3},
		[]float64{0, 0, 0, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	return crv
}

// cubicCurve is a non-rational cubic with one interior knot.
func cubicCurve(t *testing.T, weight float64) *NurbsCurve {
	t.Helper()
	crv, err := NewNurbsCurve(3,
		[]vec3.T{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {4, 0, 2}, {5, 3, 0}},
		[]float64{weight, weight, weight, weight, weight},
		[]float64{0, 0, 0, 0, 0.4, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	return crv
}

// rationalCurve has distinct weights and a repeated interior knot.
func rationalCurve(t *testing.T) *NurbsCurve {
	t.Helper()
	crv, err := NewNurbsCurve(3,
		[]vec3.T{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {4, 0, 2}, {5, 3, 0}, {6, 1, -1}},
		[]float64{1, 0.5, 2, 1.5, 0.8, 1},
		[]float64{0, 0, 0, 0, 0.3, 0.3, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	return crv
}

// sphereSurface is the bicubic patch of the unit sphere described in
// https://www.geometrictools.com/Documentation/NURBSCircleSphere.pdf
func sphereSurface(t *testing.T) *NurbsSurface {
	t.Helper()
	third, ninth := 1.0/3.0, 1.0/9.0
	srf, err := NewNurbsSurface(3, 3,
		[][]vec3.T{
			{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
			{{2, 0, 1}, {2, 4, 1}, {-2, 4, 1}, {-2, 0, 1}},
			{{2, 0, -1}, {2, 4, -1}, {-2, 4, -1}, {-2, 0, -1}},
			{{0, 0, -1}, {0, 0, -1}, {0, 0, -1}, {0, 0, -1}},
		},
		[][]float64{
			{1, third, third, 1},
			{third, ninth, ninth, third},
			{third, ninth, ninth, third},
			{1, third, third, 1},
		},
		[]float64{0, 0, 0, 0, 1, 1, 1, 1},
		[]float64{0, 0, 0, 0, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	return srf
}

// wavySurface is a rational biquadratic/cubic surface with interior knots.
func wavySurface(t *testing.T) *NurbsSurface {
	t.Helper()
	pts := make([][]vec3.T, 4)
	weights := make([][]float64, 4)
	for i := range pts {
		pts[i] = make([]vec3.T, 5)
		weights[i] = make([]float64, 5)
		for j := range pts[i] {
			pts[i][j] = vec3.T{float64(i), float64(j), float64((i*j)%3) - 0.5*float64(i)}
			weights[i][j] = 1 + 0.25*float64((i+2*j)%4)
		}
	}
	srf, err := NewNurbsSurface(2, 3, pts, weights,
		[]float64{0, 0, 0, 0.5, 1, 1, 1},
		[]float64{0, 0, 0, 0, 0.6, 1, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	return srf
}
