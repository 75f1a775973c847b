package main

import (
	"errors"
	"fmt"

	nurbs "github.com/AliceRemake/NURBS"
	"github.com/AliceRemake/NURBS/geomfile"
	"github.com/AliceRemake/NURBS/internal"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'nurbs'
func tracer() tracing.Trace {
	return tracing.Select(internal.TraceKey)
}

var (
	errNotCurve   = errors.New("document does not describe a curve")
	errNotSurface = errors.New("document does not describe a surface")
)

type options struct {
	file      string
	trace     bool
	us        []float64
	u, v      float64
	numDerivs int
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "nurbseval",
		Short:         "Evaluate NURBS curves and surfaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.trace {
				tracer().SetTraceLevel(tracing.LevelDebug)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "YAML document describing the geometry")
	cmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "enable debug tracing")
	cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(
		newCurveCommand(opts),
		newSurfaceCommand(opts),
		newDescribeCommand(opts),
	)
	return cmd
}

func newCurveCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Evaluate a curve",
	}

	point := &cobra.Command{
		Use:   "point",
		Short: "Print curve points at each -u",
		Args:  cobra.NoArgs,
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			crv, err := loadCurve(opts.file)
			if err != nil {
				return err
			}
			out := make([]curveSample, len(opts.us))
			for i, u := range opts.us {
				p := crv.Point(u)
				out[i] = curveSample{U: u, Point: &p}
			}
			return write(cmd, out)
		}),
	}
	point.Flags().Float64SliceVarP(&opts.us, "u", "u", nil, "curve parameter, may be repeated")
	point.MarkFlagRequired("u")

	derivs := &cobra.Command{
		Use:   "derivs",
		Short: "Print the point and derivatives up to order -n at each -u",
		Args:  cobra.NoArgs,
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			crv, err := loadCurve(opts.file)
			if err != nil {
				return err
			}
			out := make([]curveSample, len(opts.us))
			for i, u := range opts.us {
				out[i] = curveSample{U: u, Derivatives: crv.Derivatives(u, opts.numDerivs)}
			}
			return write(cmd, out)
		}),
	}
	derivs.Flags().Float64SliceVarP(&opts.us, "u", "u", nil, "curve parameter, may be repeated")
	derivs.Flags().IntVarP(&opts.numDerivs, "order", "n", 1, "highest derivative order")
	derivs.MarkFlagRequired("u")

	cmd.AddCommand(point, derivs)
	return cmd
}

func newSurfaceCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surface",
		Short: "Evaluate a surface",
	}

	evaluate := func(eval func(srf *nurbs.NurbsSurface, uv nurbs.UV, sample *surfaceSample)) func(*cobra.Command, []string) error {
		return guarded(func(cmd *cobra.Command, args []string) error {
			srf, err := loadSurface(opts.file)
			if err != nil {
				return err
			}
			sample := surfaceSample{U: opts.u, V: opts.v}
			eval(srf, nurbs.UV{opts.u, opts.v}, &sample)
			return write(cmd, sample)
		})
	}

	point := &cobra.Command{
		Use:   "point",
		Short: "Print the surface point at (-u, -v)",
		Args:  cobra.NoArgs,
		RunE: evaluate(func(srf *nurbs.NurbsSurface, uv nurbs.UV, sample *surfaceSample) {
			p := srf.Point(uv)
			sample.Point = &p
		}),
	}

	derivs := &cobra.Command{
		Use:   "derivs",
		Short: "Print the partial derivatives S[k][l] with k+l <= -n at (-u, -v)",
		Args:  cobra.NoArgs,
		RunE: evaluate(func(srf *nurbs.NurbsSurface, uv nurbs.UV, sample *surfaceSample) {
			sample.Derivatives = srf.Derivatives(uv, opts.numDerivs)
		}),
	}
	derivs.Flags().IntVarP(&opts.numDerivs, "order", "n", 1, "highest total derivative order")

	normal := &cobra.Command{
		Use:   "normal",
		Short: "Print the unit normal at (-u, -v)",
		Args:  cobra.NoArgs,
		RunE: evaluate(func(srf *nurbs.NurbsSurface, uv nurbs.UV, sample *surfaceSample) {
			n := srf.Normal(uv)
			sample.Normal = &n
		}),
	}

	for _, sub := range []*cobra.Command{point, derivs, normal} {
		sub.Flags().Float64VarP(&opts.u, "u", "u", 0, "parameter in u direction")
		sub.Flags().Float64VarP(&opts.v, "v", "v", 0, "parameter in v direction")
		sub.MarkFlagRequired("u")
		sub.MarkFlagRequired("v")
	}

	cmd.AddCommand(point, derivs, normal)
	return cmd
}

func newDescribeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print degree, domain and knot multiplicities of a curve or surface",
		Args:  cobra.NoArgs,
		RunE: guarded(func(cmd *cobra.Command, args []string) error {
			doc, err := geomfile.Load(opts.file)
			if err != nil {
				return err
			}

			if doc.Curve != nil {
				crv, err := doc.Curve.Build()
				if err != nil {
					return err
				}
				return write(cmd, describeCurve(crv))
			}

			srf, err := doc.Surface.Build()
			if err != nil {
				return err
			}
			return write(cmd, describeSurface(srf))
		}),
	}
}

// guarded turns a *nurbs.DomainError panic into the command's error.
func guarded(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				domainErr, ok := r.(*nurbs.DomainError)
				if !ok {
					panic(r)
				}
				err = domainErr
			}
		}()
		return run(cmd, args)
	}
}

func loadCurve(path string) (*nurbs.NurbsCurve, error) {
	doc, err := geomfile.Load(path)
	if err != nil {
		return nil, err
	}
	if doc.Curve == nil {
		return nil, fmt.Errorf("%s: %w", path, errNotCurve)
	}
	return doc.Curve.Build()
}

func loadSurface(path string) (*nurbs.NurbsSurface, error) {
	doc, err := geomfile.Load(path)
	if err != nil {
		return nil, err
	}
	if doc.Surface == nil {
		return nil, fmt.Errorf("%s: %w", path, errNotSurface)
	}
	return doc.Surface.Build()
}

func write(cmd *cobra.Command, v interface{}) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
