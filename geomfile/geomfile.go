// Package geomfile reads curve and surface descriptions from YAML documents.
//
// A document holds exactly one of
//
//	curve:
//	  degree: 2
//	  knots: [0, 0, 0, 1, 1, 1]
//	  controlPoints: [[-1, 0, 0], [0, 1, 0], [1, 0, 0]]
//	  weights: [1, 2, 3]
//
// or
//
//	surface:
//	  degreeU: 1
//	  degreeV: 1
//	  knotsU: [0, 0, 1, 1]
//	  knotsV: [0, 0, 1, 1]
//	  controlPoints: [[[0, 0, 0], [0, 1, 0]], [[1, 0, 0], [1, 1, 1]]]
//
// Weights are optional and default to 1. Control grids are indexed [u][v].
package geomfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	nurbs "github.com/AliceRemake/NURBS"
	"github.com/AliceRemake/NURBS/internal"
	"github.com/npillmayer/schuko/tracing"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'nurbs'
func tracer() tracing.Trace {
	return tracing.Select(internal.TraceKey)
}

var (
	// ErrNoGeometry indicates a document with neither a curve nor a surface.
	ErrNoGeometry = errors.New("document describes no curve or surface")
	// ErrAmbiguous indicates a document with both a curve and a surface.
	ErrAmbiguous = errors.New("document describes both a curve and a surface")
	// ErrPointDim indicates a control point without exactly three coordinates.
	ErrPointDim = errors.New("control points must have 3 coordinates")
)

// Curve is the YAML form of a NURBS curve.
type Curve struct {
	Degree        int         `yaml:"degree"`
	Knots         []float64   `yaml:"knots"`
	ControlPoints [][]float64 `yaml:"controlPoints"`
	Weights       []float64   `yaml:"weights,omitempty"`
}

// Surface is the YAML form of a NURBS surface.
type Surface struct {
	DegreeU       int           `yaml:"degreeU"`
	DegreeV       int           `yaml:"degreeV"`
	KnotsU        []float64     `yaml:"knotsU"`
	KnotsV        []float64     `yaml:"knotsV"`
	ControlPoints [][][]float64 `yaml:"controlPoints"`
	Weights       [][]float64   `yaml:"weights,omitempty"`
}

// Document is a YAML input file.
type Document struct {
	Curve   *Curve   `yaml:"curve,omitempty"`
	Surface *Surface `yaml:"surface,omitempty"`
}

// Decode reads one document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoGeometry
		}
		return nil, fmt.Errorf("decoding geometry: %w", err)
	}

	switch {
	case doc.Curve == nil && doc.Surface == nil:
		return nil, ErrNoGeometry
	case doc.Curve != nil && doc.Surface != nil:
		return nil, ErrAmbiguous
	}
	return doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if doc.Curve != nil {
		tracer().Infof("loaded curve of degree %d with %d control points from %s",
			doc.Curve.Degree, len(doc.Curve.ControlPoints), path)
	} else {
		tracer().Infof("loaded surface of degree %dx%d with %d control point rows from %s",
			doc.Surface.DegreeU, doc.Surface.DegreeV, len(doc.Surface.ControlPoints), path)
	}
	return doc, nil
}

// Build validates the description and constructs the curve.
func (this *Curve) Build() (*nurbs.NurbsCurve, error) {
	pts, err := points(this.ControlPoints)
	if err != nil {
		return nil, err
	}

	weights := this.Weights
	if weights == nil {
		weights = ones(len(pts))
	}
	return nurbs.NewNurbsCurve(this.Degree, pts, weights, this.Knots)
}

// Build validates the description and constructs the surface.
func (this *Surface) Build() (*nurbs.NurbsSurface, error) {
	pts := make([][]vec3.T, len(this.ControlPoints))
	for i, row := range this.ControlPoints {
		var err error
		if pts[i], err = points(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	weights := this.Weights
	if weights == nil {
		weights = make([][]float64, len(pts))
		for i := range pts {
			weights[i] = ones(len(pts[i]))
		}
	}
	return nurbs.NewNurbsSurface(this.DegreeU, this.DegreeV, pts, weights, this.KnotsU, this.KnotsV)
}

func points(coords [][]float64) ([]vec3.T, error) {
	pts := make([]vec3.T, len(coords))
	for i, c := range coords {
		if len(c) != 3 {
			return nil, fmt.Errorf("%w: point %d is %v", ErrPointDim, i, c)
		}
		pts[i] = vec3.T{c[0], c[1], c[2]}
	}
	return pts, nil
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
