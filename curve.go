package nurbs

import (
	"github.com/AliceRemake/NURBS/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// NurbsCurve is a rational B-spline curve. It is immutable once built, so a
// single curve may be evaluated from several goroutines at once.
type NurbsCurve struct {
	// degree of curve
	degree int

	// slice of control points, each a homogeneous coordinate
	controlPoints []internal.HomoPoint

	// slice of nondecreasing knot values
	knots internal.KnotVec
}

// NewNurbsCurve validates its arguments and builds a curve. The knot vector
// must be clamped and len(knots) must equal len(controlPoints)+degree+1.
// Weights must be finite and positive.
func NewNurbsCurve(degree int, controlPoints []vec3.T, weights []float64, knots []float64) (*NurbsCurve, error) {
	if err := checkCurve(degree, controlPoints, weights, knots); err != nil {
		tracer().Errorf("invalid curve: %v", err)
		return nil, err
	}

	return NewNurbsCurveUnchecked(degree, controlPoints, weights, knots), nil
}

// NewNurbsCurveUnchecked builds a curve without validation. Callers must
// uphold the invariants NewNurbsCurve checks.
func NewNurbsCurveUnchecked(degree int, controlPoints []vec3.T, weights []float64, knots []float64) *NurbsCurve {
	return &NurbsCurve{degree, internal.Homogenize1d(controlPoints, weights), internal.KnotVec(knots).Clone()}
}

func (this *NurbsCurve) Degree() int {
	return this.degree
}

func (this *NurbsCurve) ControlPoints() []vec3.T {
	return internal.Dehomogenize1d(this.controlPoints)
}

func (this *NurbsCurve) Weights() []float64 {
	return internal.Weight1d(this.controlPoints)
}

func (this *NurbsCurve) Knots() []float64 {
	return []float64(this.knots.Clone())
}

// Domain returns the first and last knot.
func (this *NurbsCurve) Domain() (min, max float64) {
	min = this.knots[0]
	max = this.knots[len(this.knots)-1]
	return
}

// Point evaluates the curve at u.
func (this *NurbsCurve) Point(u float64) vec3.T {
	homoPt := this.nonRationalPoint(u)
	return homoPt.Dehomogenized()
}

// Tangent returns the first derivative of the curve at u.
func (this *NurbsCurve) Tangent(u float64) vec3.T {
	return this.Derivatives(u, 1)[1]
}

// Derivatives returns numDerivs+1 vectors: the point at u followed by the
// derivatives of order 1 to numDerivs.
//
// The homogeneous derivatives A(k) and w(k) are un-weighted with
//
//	C(k) = (A(k) - sum_{i=1..k} binomial(k,i) * w(i) * C(k-i)) / w(0)
//
// (Piegl & Tiller, algorithm A4.2).
func (this *NurbsCurve) Derivatives(u float64, numDerivs int) []vec3.T {
	if numDerivs < 0 {
		panic(internal.NewDomainError("CurveDerivatives", "negative derivative order %d", numDerivs))
	}

	ders := this.nonRationalDerivatives(u, numDerivs)
	ck := make([]vec3.T, 0, numDerivs+1)

	for k := 0; k <= numDerivs; k++ {
		v := ders[k].Vec3

		for i := 1; i <= k; i++ {
			scaled := ck[k-i].Scaled(binomial(k, i) * ders[i].W)
			v.Sub(&scaled)
		}
		v.Scale(1 / ders[0].W)
		ck = append(ck, v)
	}

	return ck
}

// nonRationalDerivatives returns numDerivs+1 derivatives of the curve in
// homogeneous space (Piegl & Tiller, algorithm A3.2). Orders above the
// degree are zero.
func (this *NurbsCurve) nonRationalDerivatives(u float64, numDerivs int) []internal.HomoPoint {
	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots

	this.mustBeValidRelations("CurveDerivatives")

	du := numDerivs
	if degree < du {
		du = degree
	}

	ck := make([]internal.HomoPoint, numDerivs+1)
	knotSpanIndex := knots.Span(degree, u)
	nders := internal.DerivativeBasisFunctions(knotSpanIndex, u, degree, du, knots)

	for k := 0; k <= du; k++ {
		for j := 0; j <= degree; j++ {
			ck[k].AddScaled(&controlPoints[knotSpanIndex-degree+j], nders[k][j])
		}
	}

	return ck
}

// nonRationalPoint is the curve point in homogeneous space
// (Piegl & Tiller, algorithm A4.1).
func (this *NurbsCurve) nonRationalPoint(u float64) internal.HomoPoint {
	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots

	this.mustBeValidRelations("CurvePoint")

	knotSpanIndex := knots.Span(degree, u)
	basisValues := internal.BasisFunctions(knotSpanIndex, u, degree, knots)
	var position internal.HomoPoint

	for j := 0; j <= degree; j++ {
		position.AddScaled(&controlPoints[knotSpanIndex-degree+j], basisValues[j])
	}

	return position
}

func (this *NurbsCurve) mustBeValidRelations(op string) {
	if !areValidRelations(this.degree, len(this.controlPoints), len(this.knots)) {
		panic(internal.NewDomainError(op, "%d knots do not match %d control points of degree %d",
			len(this.knots), len(this.controlPoints), this.degree))
	}
}

// Confirm the relations between degree (p), number of control points(n+1), and the number of knots (m+1)
// via The NURBS Book (section 3.2, Second Edition)
func areValidRelations(degree, numControlPoints, knotsLength int) bool {
	return numControlPoints+degree+1 == knotsLength
}
