package internal

// Compute the non-vanishing basis functions
// (corresponds to algorithm 2.2 from The NURBS book, Piegl & Tiller 2nd edition)
//
//    0          1               d      <- index in the result
//  [span  ]                            degree 0
//  [span-1] [span    ]                 degree 1
//  [span-d] [span-d+1] ... [span]      degree d
//
// left[j] = u - knots[span+1-j] and right[j] = knots[span+j] - u. For a fixed
// degree the ratio N_{i+1,p-1} / (u_{i+p+1} - u_{i+1}) appears in both
// N_{i,p} and N_{i+1,p}, so it is computed once and carried to the next term.
//
// **params**
// + integer knot span index
// + float parameter
// + integer degree of function
// + array of nondecreasing knot values
//
// **returns**
// + the degree+1 values N_{span-degree}, ..., N_{span}
//
func BasisFunctions(knotSpanIndex int, u float64, degree int, knots KnotVec) []float64 {
	basisFunctions := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)

	basisFunctions[0] = 1

	for j := 1; j <= degree; j++ {
		left[j] = u - knots[knotSpanIndex+1-j]
		right[j] = knots[knotSpanIndex+j] - u

		// first term of the first function is zero
		var saved float64

		for r := 0; r < j; r++ {
			temp := basisFunctions[r] / (right[r+1] + left[j-r])
			basisFunctions[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}

		// second term of the last function is zero
		basisFunctions[j] = saved
	}

	return basisFunctions
}

// Compute the non-vanishing basis functions and their derivatives
// (corresponds to algorithm 2.3 from The NURBS book, Piegl & Tiller 2nd edition)
//
// ndu[r][j] holds N_{span-j+r,j} for r <= j and the knot difference
// u_{span+1+j} - u_{span+1+j-r} for r > j.
//
// **params**
// + integer knot span index
// + float parameter
// + integer degree
// + integer number of derivatives to compute
// + array of nondecreasing knot values
//
// **returns**
// + 2d array of size (numDerivs+1, degree+1). Row k holds the kth derivative
// of each non-vanishing basis function; rows above degree are zero.
func DerivativeBasisFunctions(knotSpanIndex int, u float64, p, numDerivs int, knots KnotVec) [][]float64 {
	ndu := Zeros2d(p+1, p+1)

	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu[0][0] = 1

	for j := 1; j <= p; j++ {
		left[j] = u - knots[knotSpanIndex+1-j]
		right[j] = knots[knotSpanIndex+j] - u
		var saved float64

		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]

			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := Zeros2d(numDerivs+1, p+1)

	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	n := numDerivs
	if p < n {
		n = p
	}

	// two rows of coefficients, alternated by s1/s2
	a := Zeros2d(2, n+1)

	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1

		for k := 1; k <= n; k++ {
			var d float64
			rk := r - k
			pk := p - k

			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}

			j1 := 1
			if rk < -1 {
				j1 = -rk
			}

			j2 := k - 1
			if r-1 > pk {
				j2 = p - r
			}

			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}

			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}

			ders[k][r] = d

			s1, s2 = s2, s1
		}
	}

	// falling factorial p * (p-1) * ... * (p-k+1)
	acc := p
	for k := 1; k <= n; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= float64(acc)
		}
		acc *= p - k
	}

	return ders
}

func Zeros2d(n, m int) [][]float64 {
	result := make([][]float64, n)
	for i := range result {
		result[i] = make([]float64, m)
	}

	return result
}
