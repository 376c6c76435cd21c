package matcher

import (
	"github.com/npillmayer/fpmatch/syntax"
)

// Matcher is a node of a compiled matcher tree. Every node carries the span
// of the sub-pattern it was compiled from.
type Matcher interface {
	Span() syntax.Span
	isMatcher()
}

// Bindings maps binding names to values extracted by a successful match.
type Bindings map[string]any

// Literal matches values equal to Value, which is one of int64, float64,
// string, Symbol, bool or nil.
type Literal struct {
	Pos   syntax.Span
	Value any
}

// Wildcard matches anything.
type Wildcard struct {
	Pos syntax.Span
}

// Identifier matches anything and binds it to Name.
type Identifier struct {
	Pos  syntax.Span
	Name string
}

// TypeCheck matches values conforming to the type tag Type.
type TypeCheck struct {
	Pos  syntax.Span
	Type string
}

// ArrayExact matches sequences of exactly len(Elements) elements, matched
// positionally. The element-less form terminates head/tail chains.
type ArrayExact struct {
	Pos      syntax.Span
	Elements []Matcher
}

// ArrayHeadTail matches non-empty sequences whose first element matches
// Head and whose remainder matches Tail. Pos is the span of the head element,
// Outer the span of the complete array pattern.
type ArrayHeadTail struct {
	Pos   syntax.Span
	Outer syntax.Span
	Head  Matcher
	Tail  Matcher
}

// Splat matches any remainder of a sequence.
type Splat struct {
	Pos syntax.Span
}

// NamedSplat matches any remainder of a sequence and binds it to Name.
type NamedSplat struct {
	Pos  syntax.Span
	Name string
}

// ExtractorCall applies the extractor Name and matches its payload against
// Args, which is a sequence matcher.
type ExtractorCall struct {
	Pos  syntax.Span
	Name string
	Args Matcher
}

// Aliased matches if Inner matches, and binds the whole value to Name.
type Aliased struct {
	Pos   syntax.Span
	Name  string
	Inner Matcher
}

// And matches if both Left and Right match. Bindings of Right take
// precedence.
type And struct {
	Pos   syntax.Span
	Left  Matcher
	Right Matcher
}

func (m *Literal) Span() syntax.Span       { return m.Pos }
func (m *Wildcard) Span() syntax.Span      { return m.Pos }
func (m *Identifier) Span() syntax.Span    { return m.Pos }
func (m *TypeCheck) Span() syntax.Span     { return m.Pos }
func (m *ArrayExact) Span() syntax.Span    { return m.Pos }
func (m *ArrayHeadTail) Span() syntax.Span { return m.Pos }
func (m *Splat) Span() syntax.Span         { return m.Pos }
func (m *NamedSplat) Span() syntax.Span    { return m.Pos }
func (m *ExtractorCall) Span() syntax.Span { return m.Pos }
func (m *Aliased) Span() syntax.Span       { return m.Pos }
func (m *And) Span() syntax.Span           { return m.Pos }

func (*Literal) isMatcher()       {}
func (*Wildcard) isMatcher()      {}
func (*Identifier) isMatcher()    {}
func (*TypeCheck) isMatcher()     {}
func (*ArrayExact) isMatcher()    {}
func (*ArrayHeadTail) isMatcher() {}
func (*Splat) isMatcher()         {}
func (*NamedSplat) isMatcher()    {}
func (*ExtractorCall) isMatcher() {}
func (*Aliased) isMatcher()       {}
func (*And) isMatcher()           {}

// Compiled is the immutable result of compiling pattern text.
type Compiled struct {
	Text string
	Root Matcher
}
