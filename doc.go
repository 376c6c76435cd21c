/*
Package fpmatch is a pattern-extraction engine for Go values.

Patterns are written in a small textual language and compiled once into
matcher trees. A compiled Pattern tests arbitrary values, extracts bindings
from them and explains why a value does not match:

	p := fpmatch.MustCompile("[head, *tail]")
	b, _ := p.Extract([]int{2, 1, 3})   // Just(map[head:2 tail:[1 3]])

	p = fpmatch.MustCompile("[2, 2]")
	msg, _ := p.Explain([]int{2, 1})
	// Just("mismatch at value[1]: expected 2, got 1 (line 1, column 5)
	//   [2, 2]
	//       ^")

Extractor calls like 'Just(x)' or 'Point(x, y)' are resolved by name at
match time, through the extractor registry of the engine which compiled the
pattern. The default engine is created on first use, configured from the
environment (see package config), and comes with the extractors of
extractor.NewDefaultRegistry.

On top of patterns, the package offers a small dispatch DSL selecting the
first of a list of cases whose pattern matches. Dispatching over several
types needs extractors registered per type, which do not match values of
other types:

	reg := fpmatch.Default().Registry()
	extractor.RegisterType(reg, func(c Circle) extractor.Result { return extractor.Values(c.R) })
	extractor.RegisterType(reg, func(r Rect) extractor.Result { return extractor.Values(r.W, r.H) })
	area := fpmatch.PartialFunc(
	    fpmatch.On("Circle(r)", func(b fpmatch.Bindings) float64 { ... }),
	    fpmatch.On("Rect(w, h)", func(b fpmatch.Bindings) float64 { ... }),
	)

Without a registration, 'Rect(w, h)' resolves by type name for values of
type Rect only; for any other value it fails with *ExtractorNotFound.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package fpmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.match'.
func tracer() tracing.Trace {
	return tracing.Select("fp.match")
}
