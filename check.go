package nurbs

import (
	"fmt"
	"math"

	"github.com/AliceRemake/NURBS/internal"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

// finite reports whether every value of xs is neither NaN nor infinite.
func finite(xs []float64) bool {
	if len(xs) == 0 {
		return true
	}
	return !floats.HasNaN(xs) && !math.IsInf(floats.Max(xs), 1) && !math.IsInf(floats.Min(xs), -1)
}

func checkKnots(name string, degree, numControlPoints int, knots internal.KnotVec) error {
	if degree < 0 {
		return fmt.Errorf("%w: %s is %d", ErrDegree, name, degree)
	}

	if len(knots) != numControlPoints+degree+1 {
		return fmt.Errorf("%w: %s %d, %d control points, %d knots", ErrKnotCount, name, degree, numControlPoints, len(knots))
	}

	if !finite(knots) || !knots.IsValid(degree) {
		return fmt.Errorf("%w: %v", ErrKnotFormat, []float64(knots))
	}

	return nil
}

func checkWeights(weights []float64) error {
	if !finite(weights) || floats.Min(weights) <= 0 {
		return fmt.Errorf("%w: %v", ErrWeight, weights)
	}
	return nil
}

func checkPoints(pts []vec3.T) error {
	for i := range pts {
		if !finite(pts[i][:]) {
			return fmt.Errorf("%w: %v", ErrControlPoint, pts[i])
		}
	}
	return nil
}

func checkCurve(degree int, controlPoints []vec3.T, weights []float64, knots internal.KnotVec) error {
	if len(controlPoints) == 0 {
		return ErrNoControlPoints
	}

	if len(weights) != len(controlPoints) {
		return fmt.Errorf("%w: %d weights, %d control points", ErrWeightCount, len(weights), len(controlPoints))
	}

	if err := checkKnots("degree", degree, len(controlPoints), knots); err != nil {
		return err
	}

	if err := checkPoints(controlPoints); err != nil {
		return err
	}

	return checkWeights(weights)
}

func checkSurface(degreeU, degreeV int, controlPoints [][]vec3.T, weights [][]float64, knotsU, knotsV internal.KnotVec) error {
	if len(controlPoints) == 0 || len(controlPoints[0]) == 0 {
		return ErrNoControlPoints
	}

	cols := len(controlPoints[0])
	for i := range controlPoints {
		if len(controlPoints[i]) != cols {
			return fmt.Errorf("%w: row %d has %d points, want %d", ErrGridShape, i, len(controlPoints[i]), cols)
		}
	}

	if len(weights) != len(controlPoints) {
		return fmt.Errorf("%w: %d weight rows, %d control point rows", ErrWeightCount, len(weights), len(controlPoints))
	}
	for i := range weights {
		if len(weights[i]) != cols {
			return fmt.Errorf("%w: weight row %d has %d values, want %d", ErrWeightCount, i, len(weights[i]), cols)
		}
	}

	if err := checkKnots("degreeU", degreeU, len(controlPoints), knotsU); err != nil {
		return err
	}
	if err := checkKnots("degreeV", degreeV, cols, knotsV); err != nil {
		return err
	}

	for i := range controlPoints {
		if err := checkPoints(controlPoints[i]); err != nil {
			return err
		}
		if err := checkWeights(weights[i]); err != nil {
			return err
		}
	}

	return nil
}
