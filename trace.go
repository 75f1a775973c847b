package nurbs

import (
	"github.com/AliceRemake/NURBS/internal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nurbs'
func tracer() tracing.Trace {
	return tracing.Select(internal.TraceKey)
}
