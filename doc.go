/*
Package nurbs evaluates rational B-spline (NURBS) curves and surfaces.

Given a degree, a clamped knot vector, control points and weights, the
package computes the knot span of a parameter, the non-zero basis functions
and their derivatives, points, derivatives of arbitrary order and surface
normals. The algorithms follow The NURBS Book (Piegl & Tiller, 2nd edition):
spans and basis functions (A2.1 to A2.3), points in homogeneous space
(A4.1, A4.3) and derivatives un-weighted with the Leibniz rule (A4.2, A4.4).

Curves and surfaces are built once and are read-only afterwards:

	crv, err := nurbs.NewNurbsCurve(2, pts, weights, []float64{0, 0, 0, 1, 1, 1})
	if err != nil {
		...
	}
	p := crv.Point(0.5)
	ders := crv.Derivatives(0.5, 2) // point, first and second derivative

Evaluation never returns errors. A parameter outside the knot domain, or a
curve built with NewNurbsCurveUnchecked that violates the size relations,
makes the evaluator panic with a *DomainError. The only tolerated numerical
degeneracy is a surface normal at a singular point, which is returned as the
zero vector.

All evaluators are pure functions of their inputs and keep no state between
calls, so a curve or surface may be shared by goroutines without locking.

Tracing goes to the schuko tracer selected by the key "nurbs".
*/
package nurbs
