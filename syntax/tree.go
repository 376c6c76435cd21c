package syntax

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Span locates a fragment of pattern text. Offset and Length are byte
// positions, Line and Column are 1-based and count runes.
type Span struct {
	Offset int
	Length int
	Line   int
	Column int
}

// End returns the byte offset just behind the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Text returns the fragment of src covered by s.
func (s Span) Text(src string) string {
	if s.Offset < 0 || s.End() > len(src) {
		return ""
	}
	return src[s.Offset:s.End()]
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// cover returns a span reaching from the start of s to the end of t.
func cover(s, t Span) Span {
	return Span{Offset: s.Offset, Length: t.End() - s.Offset, Line: s.Line, Column: s.Column}
}

// Underline renders the source line containing span, followed by a line of
// carets below the spanned fragment. Both lines are indented by two spaces.
func Underline(src string, span Span) string {
	if span.Offset > len(src) {
		span.Offset = len(src)
	}
	start := strings.LastIndexByte(src[:span.Offset], '\n') + 1
	end := strings.IndexByte(src[span.Offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += span.Offset
	}
	line := src[start:end]
	var pad strings.Builder
	for _, r := range src[start:span.Offset] {
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	stop := span.End()
	if stop > end {
		stop = end
	}
	width := 1
	if stop > span.Offset {
		width = utf8.RuneCountInString(src[span.Offset:stop])
	}
	return "  " + line + "\n  " + pad.String() + strings.Repeat("^", width)
}

// --- Parse tree ------------------------------------------------------------

// Node is a node of the parse tree.
type Node interface {
	Span() Span
	isNode()
}

// LiteralKind discriminates literal values.
type LiteralKind int8

// Kinds of literals.
const (
	IntLit LiteralKind = iota
	FloatLit
	StringLit
	SymbolLit
	BoolLit
	NilLit
)

func (k LiteralKind) String() string {
	switch k {
	case IntLit:
		return "integer"
	case FloatLit:
		return "float"
	case StringLit:
		return "string"
	case SymbolLit:
		return "symbol"
	case BoolLit:
		return "boolean"
	case NilLit:
		return "nil"
	}
	return "unknown"
}

// Literal is a constant. Value holds an int64, float64, string (for strings
// and symbols), bool, or nil.
type Literal struct {
	Pos   Span
	Kind  LiteralKind
	Value any
}

// Wildcard is '_'.
type Wildcard struct {
	Pos Span
}

// Ident is a bare binding name.
type Ident struct {
	Pos  Span
	Name string
}

// Typed is 'name : TypeName'. Name is "_" for a type check without binding.
type Typed struct {
	Pos  Span
	Name string
	Type string
}

// TypeRef is a bare TypeName.
type TypeRef struct {
	Pos  Span
	Name string
}

// Array is '[ elements ]'. Elements may contain Splats in any position.
type Array struct {
	Pos      Span
	Elements []Node
}

// Splat is '*' or '*name'.
type Splat struct {
	Pos  Span
	Name string
}

// Call is 'Name(args)'.
type Call struct {
	Pos  Span
	Name string
	Args []Node
}

// Alias is 'name @ pattern'.
type Alias struct {
	Pos   Span
	Name  string
	Inner Node
}

func (n *Literal) Span() Span  { return n.Pos }
func (n *Wildcard) Span() Span { return n.Pos }
func (n *Ident) Span() Span    { return n.Pos }
func (n *Typed) Span() Span    { return n.Pos }
func (n *TypeRef) Span() Span  { return n.Pos }
func (n *Array) Span() Span    { return n.Pos }
func (n *Splat) Span() Span    { return n.Pos }
func (n *Call) Span() Span     { return n.Pos }
func (n *Alias) Span() Span    { return n.Pos }

func (*Literal) isNode()  {}
func (*Wildcard) isNode() {}
func (*Ident) isNode()    {}
func (*Typed) isNode()    {}
func (*TypeRef) isNode()  {}
func (*Array) isNode()    {}
func (*Splat) isNode()    {}
func (*Call) isNode()     {}
func (*Alias) isNode()    {}

// Locate returns the span of length bytes starting at byte offset in src,
// with line and column filled in.
func Locate(src string, offset, length int) Span {
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], "\n")
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	column := 1 + utf8.RuneCountInString(src[lineStart:offset])
	return Span{Offset: offset, Length: length, Line: line, Column: column}
}
