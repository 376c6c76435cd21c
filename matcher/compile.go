package matcher

import (
	"fmt"

	"github.com/npillmayer/fpmatch/syntax"
)

// Compile parses text and compiles it into a matcher tree. Errors are of
// type *syntax.Error.
func Compile(text string) (*Compiled, error) {
	node, err := syntax.Parse(text)
	if err != nil {
		return nil, err
	}
	root, err := Build(node, text)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled pattern %q", text)
	return &Compiled{Text: text, Root: root}, nil
}

// Build transforms a parse tree of src into a matcher tree. It checks the
// placement of splats: at most one per array or argument list, and only in
// last position.
func Build(node syntax.Node, src string) (Matcher, error) {
	b := builder{src: src}
	return b.build(node)
}

type builder struct {
	src string
}

func (b builder) build(node syntax.Node) (Matcher, error) {
	switch n := node.(type) {
	case *syntax.Literal:
		value := n.Value
		if n.Kind == syntax.SymbolLit {
			value = Symbol(n.Value.(string))
		}
		return &Literal{Pos: n.Pos, Value: value}, nil
	case *syntax.Wildcard:
		return &Wildcard{Pos: n.Pos}, nil
	case *syntax.Ident:
		return &Identifier{Pos: n.Pos, Name: n.Name}, nil
	case *syntax.Typed:
		check := &TypeCheck{Pos: n.Pos, Type: n.Type}
		if n.Name == "_" {
			return check, nil
		}
		return &And{Pos: n.Pos, Left: check, Right: &Identifier{Pos: n.Pos, Name: n.Name}}, nil
	case *syntax.TypeRef:
		return &TypeCheck{Pos: n.Pos, Type: n.Name}, nil
	case *syntax.Array:
		return b.sequence(n.Elements, n.Pos)
	case *syntax.Call:
		args, err := b.sequence(n.Args, n.Pos)
		if err != nil {
			return nil, err
		}
		return &ExtractorCall{Pos: n.Pos, Name: n.Name, Args: args}, nil
	case *syntax.Alias:
		inner, err := b.build(n.Inner)
		if err != nil {
			return nil, err
		}
		return &Aliased{Pos: n.Pos, Name: n.Name, Inner: inner}, nil
	case *syntax.Splat:
		return nil, syntax.Errorf(b.src, n.Pos, "splat is only allowed inside an array or argument list")
	}
	panic(fmt.Sprintf("matcher: unknown parse tree node %T", node))
}

// sequence compiles the elements of an array or argument list into a chain
// of head/tail matchers. The chain ends in a splat matcher if the last
// element is a splat, and in an empty-sequence check otherwise.
func (b builder) sequence(elems []syntax.Node, outer syntax.Span) (Matcher, error) {
	if err := b.checkSplats(elems); err != nil {
		return nil, err
	}
	var tail Matcher
	n := len(elems)
	if n > 0 {
		if s, ok := elems[n-1].(*syntax.Splat); ok {
			pos := s.Pos
			if n == 1 { // the splat stands for the whole sequence
				pos = outer
			}
			if s.Name == "" {
				tail = &Splat{Pos: pos}
			} else {
				tail = &NamedSplat{Pos: pos, Name: s.Name}
			}
			n--
		}
	}
	if tail == nil {
		if len(elems) == 0 {
			tail = &ArrayExact{Pos: outer}
		} else { // point at the closing bracket
			tail = &ArrayExact{Pos: syntax.Locate(b.src, outer.End()-1, 1)}
		}
	}
	for i := n - 1; i >= 0; i-- {
		head, err := b.build(elems[i])
		if err != nil {
			return nil, err
		}
		tail = &ArrayHeadTail{Pos: elems[i].Span(), Outer: outer, Head: head, Tail: tail}
	}
	return tail, nil
}

func (b builder) checkSplats(elems []syntax.Node) error {
	seen := false
	for _, elem := range elems {
		s, ok := elem.(*syntax.Splat)
		if !ok {
			continue
		}
		if seen {
			return syntax.Errorf(b.src, s.Pos, "only one splat allowed per array")
		}
		seen = true
	}
	for i, elem := range elems {
		if s, ok := elem.(*syntax.Splat); ok && i != len(elems)-1 {
			return syntax.Errorf(b.src, s.Pos, "splat must be the last element")
		}
	}
	return nil
}
