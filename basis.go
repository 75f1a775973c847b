package nurbs

import "github.com/AliceRemake/NURBS/internal"

// FindSpan returns the index i of the knot span [knots[i], knots[i+1]) that
// contains u. At the last knot value the last non-empty span is returned.
//
// knots must be clamped for degree. FindSpan panics with a *DomainError if
// knots is empty or u lies outside [knots[0], knots[len-1]] by more than
// machine epsilon.
func FindSpan(degree int, knots []float64, u float64) int {
	return internal.KnotVec(knots).Span(degree, u)
}

// BasisFunctions returns the degree+1 non-zero basis functions
// N_{span-degree}, ..., N_{span} at u.
func BasisFunctions(degree, span int, knots []float64, u float64) []float64 {
	return internal.BasisFunctions(span, u, degree, knots)
}

// DerivativeBasisFunctions returns a (numDerivs+1) x (degree+1) table whose
// row k holds the kth derivatives of the non-zero basis functions at u.
// Rows above degree are zero.
func DerivativeBasisFunctions(degree, span int, knots []float64, u float64, numDerivs int) [][]float64 {
	if numDerivs < 0 {
		panic(internal.NewDomainError("DerivativeBasisFunctions", "negative derivative order %d", numDerivs))
	}
	return internal.DerivativeBasisFunctions(span, u, degree, numDerivs, knots)
}

// KnotMultiplicity is a distinct knot value and the number of times it is
// repeated.
type KnotMultiplicity = internal.KnotMultiplicity

// KnotMultiplicities summarizes a non-decreasing knot vector, merging
// values closer than machine epsilon.
func KnotMultiplicities(knots []float64) []KnotMultiplicity {
	return internal.KnotVec(knots).Multiplicities()
}
