package main

import (
	nurbs "github.com/AliceRemake/NURBS"
	"github.com/ungerik/go3d/float64/vec3"
)

type curveSample struct {
	U           float64  `yaml:"u"`
	Point       *vec3.T  `yaml:"point,omitempty,flow"`
	Derivatives []vec3.T `yaml:"derivatives,omitempty,flow"`
}

type surfaceSample struct {
	U           float64    `yaml:"u"`
	V           float64    `yaml:"v"`
	Point       *vec3.T    `yaml:"point,omitempty,flow"`
	Derivatives [][]vec3.T `yaml:"derivatives,omitempty,flow"`
	Normal      *vec3.T    `yaml:"normal,omitempty,flow"`
}

type knotSummary struct {
	Knot float64 `yaml:"knot"`
	Mult int     `yaml:"mult"`
}

type description struct {
	Kind          string          `yaml:"kind"`
	Degree        []int           `yaml:"degree,flow"`
	ControlPoints []int           `yaml:"controlPoints,flow"`
	Rational      bool            `yaml:"rational"`
	Domain        [][2]float64    `yaml:"domain,flow"`
	Knots         [][]knotSummary `yaml:"knots"`
}

func summarize(knots []float64) []knotSummary {
	mults := nurbs.KnotMultiplicities(knots)
	out := make([]knotSummary, len(mults))
	for i, m := range mults {
		out[i] = knotSummary{m.Knot, m.Mult}
	}
	return out
}

func rational(weights []float64) bool {
	for _, w := range weights {
		if w != weights[0] {
			return true
		}
	}
	return false
}

func describeCurve(crv *nurbs.NurbsCurve) description {
	min, max := crv.Domain()
	return description{
		Kind:          "curve",
		Degree:        []int{crv.Degree()},
		ControlPoints: []int{len(crv.ControlPoints())},
		Rational:      rational(crv.Weights()),
		Domain:        [][2]float64{{min, max}},
		Knots:         [][]knotSummary{summarize(crv.Knots())},
	}
}

func describeSurface(srf *nurbs.NurbsSurface) description {
	minU, maxU := srf.DomainU()
	minV, maxV := srf.DomainV()

	weights := srf.Weights()
	var flat []float64
	for _, row := range weights {
		flat = append(flat, row...)
	}

	return description{
		Kind:          "surface",
		Degree:        []int{srf.DegreeU(), srf.DegreeV()},
		ControlPoints: []int{len(weights), len(weights[0])},
		Rational:      rational(flat),
		Domain:        [][2]float64{{minU, maxU}, {minV, maxV}},
		Knots:         [][]knotSummary{summarize(srf.KnotsU()), summarize(srf.KnotsV())},
	}
}
