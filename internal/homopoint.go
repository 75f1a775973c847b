package internal

import "github.com/ungerik/go3d/float64/vec3"

// HomoPoint is a point lifted to projective space as (w*P, w).
type HomoPoint struct {
	Vec3 vec3.T
	W    float64
}

func (this *HomoPoint) Add(pt *HomoPoint) *HomoPoint {
	this.Vec3.Add(&pt.Vec3)
	this.W += pt.W

	return this
}

func (this *HomoPoint) Scale(scale float64) *HomoPoint {
	this.Vec3.Scale(scale)
	this.W *= scale

	return this
}

// AddScaled accumulates scale*pt without modifying pt.
func (this *HomoPoint) AddScaled(pt *HomoPoint, scale float64) *HomoPoint {
	scaled := pt.Vec3.Scaled(scale)
	this.Vec3.Add(&scaled)
	this.W += pt.W * scale

	return this
}

// Dehomogenized projects the point back to 3D by dividing by its weight.
// A zero weight yields non-finite coordinates.
func (this *HomoPoint) Dehomogenized() vec3.T {
	return this.Vec3.Scaled(1 / this.W)
}

func Homogenized(pt vec3.T, w float64) HomoPoint {
	return HomoPoint{pt.Scaled(w), w}
}

// Homogenize1d lifts every control point to (w_i*P_i, w_i).
// len(weights) must be at least len(pts).
func Homogenize1d(pts []vec3.T, weights []float64) []HomoPoint {
	homoPts := make([]HomoPoint, 0, len(pts))
	for i, pt := range pts {
		homoPts = append(homoPts, Homogenized(pt, weights[i]))
	}

	return homoPts
}

// Homogenize2d lifts a control grid row by row.
func Homogenize2d(pts [][]vec3.T, weights [][]float64) [][]HomoPoint {
	homoPts := make([][]HomoPoint, len(pts))
	for i := range homoPts {
		homoPts[i] = Homogenize1d(pts[i], weights[i])
	}

	return homoPts
}

func Dehomogenize1d(homoPoints []HomoPoint) []vec3.T {
	result := make([]vec3.T, 0, len(homoPoints))
	for i := range homoPoints {
		result = append(result, homoPoints[i].Dehomogenized())
	}

	return result
}

func Dehomogenize2d(homoPoints [][]HomoPoint) [][]vec3.T {
	result := make([][]vec3.T, len(homoPoints))
	for i := range result {
		result[i] = Dehomogenize1d(homoPoints[i])
	}

	return result
}

// Weight1d extracts the weights of homogeneous points.
func Weight1d(homoPoints []HomoPoint) (weights []float64) {
	weights = make([]float64, len(homoPoints))
	for i := range weights {
		weights[i] = homoPoints[i].W
	}

	return
}

func Weight2d(homoPoints [][]HomoPoint) (weights [][]float64) {
	weights = make([][]float64, len(homoPoints))
	for i := range weights {
		weights[i] = Weight1d(homoPoints[i])
	}

	return
}
