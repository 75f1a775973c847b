package internal

import (
	"math"
	"sort"
)

// MachineEpsilon is the float64 unit roundoff used for parameter domain
// tolerance and degeneracy checks.
const MachineEpsilon = 0x1p-52

type KnotVec []float64

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

func (this KnotVec) Domain() float64 {
	return this[len(this)-1] - this[0]
}

// Find the span on the knot vector of the given parameter
//
// The span is found by a binary search for the first interior knot strictly
// greater than u in [degree+1, len-degree-1), minus one. At the last knot
// value the result is the last non-empty span, so the upper end of the domain
// is treated as closed.
//
// **params**
// + integer degree of function
// + float parameter
//
// **returns**
// + the index of the knot span
//
// Panics with a *DomainError if the knot vector is empty, too short for the
// degree, or u lies outside the domain by more than MachineEpsilon.
func (this KnotVec) Span(degree int, u float64) int {
	if len(this) == 0 {
		panic(NewDomainError("FindSpan", "empty knot vector"))
	}
	if degree < 0 || len(this) < 2*degree+2 {
		panic(NewDomainError("FindSpan", "knot vector of length %d too short for degree %d", len(this), degree))
	}
	if !(this[0]-MachineEpsilon <= u && u <= this[len(this)-1]+MachineEpsilon) {
		panic(NewDomainError("FindSpan", "parameter %g outside domain [%g, %g]", u, this[0], this[len(this)-1]))
	}

	low, high := degree+1, len(this)-degree-1
	i := sort.Search(high-low, func(i int) bool {
		return this[low+i] > u
	})

	return low + i - 1
}

//
// Determine the multiplicities of the values in a knot vector
//
// **returns**
// + slice of (knot value, multiplicity) pairs in increasing knot order
//
func (this KnotVec) Multiplicities() []KnotMultiplicity {
	if len(this) == 0 {
		return nil
	}

	mults := []KnotMultiplicity{{this[0], 0}}

	var currI int
	for _, knot := range this {
		if math.Abs(knot-mults[currI].Knot) > MachineEpsilon {
			mults = append(mults, KnotMultiplicity{knot, 0})
			currI++
		}

		mults[currI].Mult++
	}

	return mults
}

// IsValid reports whether the vector is non-decreasing and clamped for the
// given degree, i.e. its first and last values are each repeated degree+1
// times.
func (this KnotVec) IsValid(degree int) bool {
	if len(this) == 0 || degree < 0 {
		return false
	}

	if len(this) < (degree+1)*2 {
		return false
	}

	rep := this[0]

	for _, knot := range this[:degree+1] {
		if math.Abs(knot-rep) > MachineEpsilon {
			return false
		}
	}

	rep = this[len(this)-1]

	for _, knot := range this[len(this)-degree-1:] {
		if math.Abs(knot-rep) > MachineEpsilon {
			return false
		}
	}

	return this.IsNonDecreasing()
}

func (this KnotVec) IsNonDecreasing() bool {
	if len(this) == 0 {
		return true
	}

	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep {
			return false
		}
		rep = knot
	}
	return true
}

type KnotMultiplicity struct {
	Knot float64
	Mult int
}
