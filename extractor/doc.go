/*
Package extractor holds named extractor functions for extractor-call patterns.

An extractor inspects an opaque value and reports one of four outcomes,
modelled by the sum type Result: NoMatch, Scalar, Tuple or Boolean. Patterns
like 'Point(x, y)' look up the extractor "Point" at evaluation time and match
its payload against the argument patterns.

Registries are safe for concurrent registration and lookup.
*/
package extractor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.extractor'.
func tracer() tracing.Trace {
	return tracing.Select("fp.extractor")
}
