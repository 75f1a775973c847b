package internal

import "github.com/npillmayer/schuko/tracing"

// TraceKey selects the tracer shared by all NURBS packages.
const TraceKey = "nurbs"

func tracer() tracing.Trace {
	return tracing.Select(TraceKey)
}
