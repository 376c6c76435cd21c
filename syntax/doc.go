/*
Package syntax implements the lexer and parser for the pattern language.

Patterns are small textual descriptions of value shapes:

	42   3.5   "text"   'text'   :symbol   true   false   nil
	_                      wildcard
	name                   binding
	name : TypeName        typed binding
	TypeName               type check
	[a, b, *rest]          array with optional trailing splat
	Name(x, y)             extractor call
	name @ pattern         alias

Parse produces a tree of Nodes, each of which records the Span of pattern
text it was derived from. Syntax errors are reported as *Error, carrying line,
column and the offending fragment of text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("fp.syntax")
}
