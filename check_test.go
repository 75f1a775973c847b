package nurbs

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestNewNurbsCurveValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	pts := []vec3.T{{0, 0, 0}, {1, 1, 0}, {2, 0, 0}}
	weights := []float64{1, 1, 1}
	knots := []float64{0, 0, 0, 1, 1, 1}

	cases := []struct {
		name    string
		degree  int
		pts     []vec3.T
		weights []float64
		knots   []float64
		err     error
	}{
		{"no points", 2, nil, nil, knots, ErrNoControlPoints},
		{"negative degree", -1, pts, weights, knots, ErrDegree},
		{"knot count", 1, pts, weights, knots, ErrKnotCount},
		{"unclamped", 2, pts, weights, []float64{0, 0, 0.5, 1, 1, 1}, ErrKnotFormat},
		{"decreasing", 2, pts, weights, []float64{0, 0, 0, -1, -1, -1}, ErrKnotFormat},
		{"nan knot", 2, pts, weights, []float64{0, 0, 0, math.NaN(), math.NaN(), math.NaN()}, ErrKnotFormat},
		{"weight count", 2, pts, []float64{1, 1}, knots, ErrWeightCount},
		{"zero weight", 2, pts, []float64{1, 0, 1}, knots, ErrWeight},
		{"infinite weight", 2, pts, []float64{1, math.Inf(1), 1}, knots, ErrWeight},
		{"nan point", 2, []vec3.T{{0, 0, 0}, {math.NaN(), 1, 0}, {2, 0, 0}}, weights, knots, ErrControlPoint},
	}

	for _, c := range cases {
		crv, err := NewNurbsCurve(c.degree, c.pts, c.weights, c.knots)
		assert.ErrorIs(t, err, c.err, c.name)
		assert.Nil(t, crv, c.name)
	}

	crv, err := NewNurbsCurve(2, pts, weights, knots)
	require.NoError(t, err)
	require.NotNil(t, crv)

	// degree 0 curves are piecewise constant
	steps, err := NewNurbsCurve(0, pts, weights, []float64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, pts[1], steps.Point(1.5))
	assert.Equal(t, pts[2], steps.Point(3))
}

func TestNewNurbsSurfaceValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	pts := [][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 1}},
	}
	weights := [][]float64{{1, 1}, {1, 1}}
	knots := []float64{0, 0, 1, 1}

	_, err := NewNurbsSurface(1, 1, pts, weights, knots, knots)
	require.NoError(t, err)

	_, err = NewNurbsSurface(1, 1, nil, nil, knots, knots)
	assert.ErrorIs(t, err, ErrNoControlPoints)

	ragged := [][]vec3.T{{{0, 0, 0}, {0, 1, 0}}, {{1, 0, 0}}}
	_, err = NewNurbsSurface(1, 1, ragged, weights, knots, knots)
	assert.ErrorIs(t, err, ErrGridShape)

	_, err = NewNurbsSurface(1, 1, pts, [][]float64{{1, 1}}, knots, knots)
	assert.ErrorIs(t, err, ErrWeightCount)

	_, err = NewNurbsSurface(1, 1, pts, [][]float64{{1, 1}, {1}}, knots, knots)
	assert.ErrorIs(t, err, ErrWeightCount)

	_, err = NewNurbsSurface(2, 1, pts, weights, knots, knots)
	assert.ErrorIs(t, err, ErrKnotCount)

	_, err = NewNurbsSurface(1, 1, pts, weights, knots, []float64{0, 1, 1, 1})
	assert.ErrorIs(t, err, ErrKnotFormat)

	_, err = NewNurbsSurface(1, 1, pts, [][]float64{{1, 1}, {1, -2}}, knots, knots)
	assert.ErrorIs(t, err, ErrWeight)
}
