/*
Package matcher compiles parse trees of patterns into matcher trees and
evaluates them against runtime values.

A matcher tree is immutable. Evaluation is a single depth-first traversal,
shared by Matches, Bindings and Diagnose, which stops at the first failing
sub-matcher. Consequently the failure reported by Diagnose is always the one
that made Matches return false.

Extractor calls are resolved through an Applier at evaluation time, never at
compile time; a pattern may be compiled before its extractors are registered.
*/
package matcher

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.matcher'.
func tracer() tracing.Trace {
	return tracing.Select("fp.matcher")
}
