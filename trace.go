package nurbs

import "github.com/npillmayer/schuko/tracing"

// tracer writes to the trace with key 'nurbs'.
func tracer() tracing.Trace {
	return tracing.Select("nurbs")
}
