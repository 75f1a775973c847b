package nurbs

import (
	"github.com/AliceRemake/NURBS/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// UV is a surface parameter pair (u, v).
type UV [2]float64

// NurbsSurface is a tensor-product rational B-spline surface. Like
// NurbsCurve it is immutable once built.
type NurbsSurface struct {
	// integer degree of surface in u direction
	degreeU int

	// integer degree of surface in v direction
	degreeV int

	// control grid indexed [u][v]; u increases from top to bottom, v from left to right
	controlPoints [][]internal.HomoPoint

	// nondecreasing knot values in u direction
	knotsU internal.KnotVec

	// nondecreasing knot values in v direction
	knotsV internal.KnotVec
}

// NewNurbsSurfaceUnchecked builds a surface without validation.
func NewNurbsSurfaceUnchecked(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) *NurbsSurface {
	return &NurbsSurface{
		degreeU, degreeV,
		internal.Homogenize2d(controlPoints, weights),
		internal.KnotVec(knotsU).Clone(), internal.KnotVec(knotsV).Clone(),
	}
}

// NewNurbsSurface validates its arguments and builds a surface.
// controlPoints and weights are indexed [u][v] and must form a rectangular
// grid of len(knotsU)-degreeU-1 rows by len(knotsV)-degreeV-1 columns.
func NewNurbsSurface(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV []float64) (*NurbsSurface, error) {
	if err := checkSurface(degreeU, degreeV, controlPoints, weights, knotsU, knotsV); err != nil {
		tracer().Errorf("invalid surface: %v", err)
		return nil, err
	}

	return NewNurbsSurfaceUnchecked(degreeU, degreeV, controlPoints, weights, knotsU, knotsV), nil
}

func (this *NurbsSurface) DegreeU() int {
	return this.degreeU
}

func (this *NurbsSurface) DegreeV() int {
	return this.degreeV
}

func (this *NurbsSurface) ControlPoints() [][]vec3.T {
	return internal.Dehomogenize2d(this.controlPoints)
}

func (this *NurbsSurface) Weights() [][]float64 {
	return internal.Weight2d(this.controlPoints)
}

func (this *NurbsSurface) KnotsU() []float64 {
	return []float64(this.knotsU.Clone())
}

func (this *NurbsSurface) KnotsV() []float64 {
	return []float64(this.knotsV.Clone())
}

func (this *NurbsSurface) DomainU() (min, max float64) {
	min = this.knotsU[0]
	max = this.knotsU[len(this.knotsU)-1]
	return
}

func (this *NurbsSurface) DomainV() (min, max float64) {
	min = this.knotsV[0]
	max = this.knotsV[len(this.knotsV)-1]
	return
}

// Normal returns the unit normal S_u x S_v at uv. At singular points, where
// the cross product is not longer than machine epsilon, the zero vector is
// returned.
func (this *NurbsSurface) Normal(uv UV) vec3.T {
	derivs := this.Derivatives(uv, 1)
	n := vec3.Cross(&derivs[1][0], &derivs[0][1])

	length := n.Length()
	if length <= internal.MachineEpsilon {
		tracer().Debugf("degenerate normal at %v", uv)
		return vec3.T{}
	}

	return n.Scaled(1 / length)
}

// Derivatives returns a (numDerivs+1) x (numDerivs+1) grid where entry
// [k][l] is the derivative of order k in u and l in v at uv; [0][0] is the
// point. Entries with k+l > numDerivs are not computed and stay zero.
//
// The homogeneous derivatives are un-weighted with the two-level Leibniz rule
// (Piegl & Tiller, algorithm A4.4):
//
//	S(k,l) = (A(k,l) - sum_j C(l,j) w(0,j) S(k,l-j)
//	         - sum_i C(k,i) [w(i,0) S(k-i,l) + sum_j C(l,j) w(i,j) S(k-i,l-j)]) / w(0,0)
//
// with i and j starting at 1.
func (this *NurbsSurface) Derivatives(uv UV, numDerivs int) [][]vec3.T {
	if numDerivs < 0 {
		panic(internal.NewDomainError("SurfaceDerivatives", "negative derivative order %d", numDerivs))
	}

	ders := this.nonRationalDerivatives(uv, numDerivs)
	skl := make([][]vec3.T, numDerivs+1)
	for k := range skl {
		skl[k] = make([]vec3.T, numDerivs+1)
	}

	for k := 0; k <= numDerivs; k++ {
		for l := 0; l <= numDerivs-k; l++ {
			v := ders[k][l].Vec3

			for j := 1; j <= l; j++ {
				scaled := skl[k][l-j].Scaled(binomial(l, j) * ders[0][j].W)
				v.Sub(&scaled)
			}

			for i := 1; i <= k; i++ {
				scaled := skl[k-i][l].Scaled(binomial(k, i) * ders[i][0].W)
				v.Sub(&scaled)

				var v2 vec3.T

				for j := 1; j <= l; j++ {
					scaled := skl[k-i][l-j].Scaled(binomial(l, j) * ders[i][j].W)
					v2.Add(&scaled)
				}

				scaled = v2.Scaled(binomial(k, i))
				v.Sub(&scaled)
			}

			v.Scale(1 / ders[0][0].W)
			skl[k][l] = v
		}
	}

	return skl
}

// Point evaluates the surface at uv.
func (this *NurbsSurface) Point(uv UV) vec3.T {
	homoPt := this.nonRationalPoint(uv)
	return homoPt.Dehomogenized()
}

// nonRationalDerivatives returns the (numDerivs+1) x (numDerivs+1) grid of
// homogeneous derivatives (Piegl & Tiller, algorithm A3.6). Entry [k][l] is
// filled for k <= min(numDerivs, degreeU) and l <= min(numDerivs-k, degreeV);
// all other entries are zero.
func (this *NurbsSurface) nonRationalDerivatives(uv UV, numDerivs int) [][]internal.HomoPoint {
	degreeU := this.degreeU
	degreeV := this.degreeV
	controlPoints := this.controlPoints
	knotsU := this.knotsU
	knotsV := this.knotsV

	this.mustBeValidRelations("SurfaceDerivatives")

	du := numDerivs
	if degreeU < du {
		du = degreeU
	}
	dv := numDerivs
	if degreeV < dv {
		dv = degreeV
	}

	skl := make([][]internal.HomoPoint, numDerivs+1)
	for i := range skl {
		skl[i] = make([]internal.HomoPoint, numDerivs+1)
	}

	knotSpanIndexU := knotsU.Span(degreeU, uv[0])
	knotSpanIndexV := knotsV.Span(degreeV, uv[1])
	uders := internal.DerivativeBasisFunctions(knotSpanIndexU, uv[0], degreeU, du, knotsU)
	vders := internal.DerivativeBasisFunctions(knotSpanIndexV, uv[1], degreeV, dv, knotsV)
	uind := knotSpanIndexU - degreeU
	vind := knotSpanIndexV - degreeV
	temp := make([]internal.HomoPoint, degreeV+1)

	for k := 0; k <= du; k++ {
		// contract the u rows with the kth u derivatives
		for s := range temp {
			temp[s] = internal.HomoPoint{}

			for r := 0; r <= degreeU; r++ {
				temp[s].AddScaled(&controlPoints[uind+r][vind+s], uders[k][r])
			}
		}

		dd := numDerivs - k
		if dv < dd {
			dd = dv
		}

		for l := 0; l <= dd; l++ {
			for s := 0; s <= degreeV; s++ {
				skl[k][l].AddScaled(&temp[s], vders[l][s])
			}
		}
	}

	return skl
}

// nonRationalPoint is the surface point in homogeneous space
// (Piegl & Tiller, algorithm A4.3).
func (this *NurbsSurface) nonRationalPoint(uv UV) internal.HomoPoint {
	degreeU := this.degreeU
	degreeV := this.degreeV
	controlPoints := this.controlPoints
	knotsU := this.knotsU
	knotsV := this.knotsV

	this.mustBeValidRelations("SurfacePoint")

	knotSpanIndexU := knotsU.Span(degreeU, uv[0])
	knotSpanIndexV := knotsV.Span(degreeV, uv[1])
	uBasisVals := internal.BasisFunctions(knotSpanIndexU, uv[0], degreeU, knotsU)
	vBasisVals := internal.BasisFunctions(knotSpanIndexV, uv[1], degreeV, knotsV)
	uind := knotSpanIndexU - degreeU
	var position internal.HomoPoint

	for l := 0; l <= degreeV; l++ {
		var temp internal.HomoPoint
		vind := knotSpanIndexV - degreeV + l

		// sample u isoline
		for k := 0; k <= degreeU; k++ {
			temp.AddScaled(&controlPoints[uind+k][vind], uBasisVals[k])
		}

		// add point from u isoline
		position.AddScaled(&temp, vBasisVals[l])
	}

	return position
}

func (this *NurbsSurface) mustBeValidRelations(op string) {
	if len(this.controlPoints) == 0 ||
		!areValidRelations(this.degreeU, len(this.controlPoints), len(this.knotsU)) ||
		!areValidRelations(this.degreeV, len(this.controlPoints[0]), len(this.knotsV)) {
		panic(internal.NewDomainError(op, "knot vectors do not match the control grid"))
	}
}
