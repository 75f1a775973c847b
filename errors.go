package nurbs

import (
	"errors"

	"github.com/AliceRemake/NURBS/internal"
)

// DomainError is the panic value of evaluators called with a parameter or
// description they cannot accept, for example a parameter outside the knot
// domain.
type DomainError = internal.DomainError

var (
	// ErrNoControlPoints indicates an empty control point set or grid.
	ErrNoControlPoints = errors.New("control points must not be empty")
	// ErrDegree indicates a negative degree.
	ErrDegree = errors.New("degree must not be negative")
	// ErrKnotCount indicates len(knots) != numControlPoints + degree + 1.
	ErrKnotCount = errors.New("len(controlPoints) + degree + 1 must equal len(knots)")
	// ErrKnotFormat indicates a knot vector that is decreasing, non-finite or not clamped.
	ErrKnotFormat = errors.New("knot vector must be non-decreasing, finite and begin and end with degree + 1 repeats")
	// ErrWeightCount indicates a weight set not parallel to the control points.
	ErrWeightCount = errors.New("weights must have the same shape as control points")
	// ErrWeight indicates a non-finite or non-positive weight.
	ErrWeight = errors.New("weights must be finite and positive")
	// ErrGridShape indicates a ragged control point grid.
	ErrGridShape = errors.New("control point grid rows must have equal length")
	// ErrControlPoint indicates a non-finite control point coordinate.
	ErrControlPoint = errors.New("control point coordinates must be finite")
)
