package matcher

import (
	"fmt"

	"github.com/npillmayer/fpmatch/extractor"
	"github.com/npillmayer/fpmatch/syntax"
)

// Applier applies named extractors to values. *extractor.Registry is an
// Applier.
type Applier interface {
	Apply(name string, value any) (extractor.Result, error)
}

// Failure describes the first sub-matcher which failed to match.
type Failure struct {
	Span   syntax.Span // span of the failing sub-pattern
	Path   string      // path to the offending part of the input, e.g. "value[1]"
	Value  any         // offending part of the input
	Reason string
}

// Matches reports whether value conforms to the pattern. Errors stem from
// extractor calls only: an unknown extractor or an extractor violating the
// result protocol.
func (c *Compiled) Matches(value any, ext Applier) (bool, error) {
	ev := evaluation{extractors: ext}
	return ev.match(c.Root, value, "")
}

// Bindings matches value and returns the bindings collected. If value does
// not match, the result is an empty map.
func (c *Compiled) Bindings(value any, ext Applier) (Bindings, error) {
	b, _, err := c.Extract(value, ext)
	return b, err
}

// Extract matches value and returns the bindings collected together with
// the outcome of the match. If value does not match, the bindings are empty.
func (c *Compiled) Extract(value any, ext Applier) (Bindings, bool, error) {
	ev := evaluation{extractors: ext, bindings: make(Bindings)}
	ok, err := ev.match(c.Root, value, "")
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return Bindings{}, false, nil
	}
	return ev.bindings, true, nil
}

// Diagnose returns the failure which causes value not to match, or nil if
// value matches.
func (c *Compiled) Diagnose(value any, ext Applier) (*Failure, error) {
	ev := evaluation{extractors: ext, record: true}
	ok, err := ev.match(c.Root, value, "value")
	if err != nil || ok {
		return nil, err
	}
	if ev.failure == nil { // cannot happen for matchers of this package
		return &Failure{Span: c.Root.Span(), Path: "value", Value: value, Reason: "no match"}, nil
	}
	return ev.failure, nil
}

// evaluation is the state of one traversal of a matcher tree. Bindings are
// collected only if bindings is non-nil, failures only if record is set.
type evaluation struct {
	extractors Applier
	bindings   Bindings
	record     bool
	failure    *Failure
}

func (ev *evaluation) bind(name string, value any) {
	if ev.bindings != nil {
		ev.bindings[name] = value
	}
}

func (ev *evaluation) fail(span syntax.Span, path string, value any, format string, args ...any) bool {
	if ev.record && ev.failure == nil {
		ev.failure = &Failure{
			Span:   span,
			Path:   path,
			Value:  value,
			Reason: fmt.Sprintf(format, args...),
		}
	}
	return false
}

func (ev *evaluation) index(path string, i int) string {
	if !ev.record {
		return ""
	}
	return fmt.Sprintf("%s[%d]", path, i)
}

func (ev *evaluation) match(m Matcher, value any, path string) (bool, error) {
	switch m := m.(type) {
	case *Literal:
		if literalEquals(m.Value, value) {
			return true, nil
		}
		return ev.fail(m.Pos, path, value, "expected %s, got %s", describe(m.Value), describe(value)), nil
	case *Wildcard:
		return true, nil
	case *Identifier:
		ev.bind(m.Name, value)
		return true, nil
	case *TypeCheck:
		if conforms(m.Type, value) {
			return true, nil
		}
		return ev.fail(m.Pos, path, value, "expected a value of type %s, got %s (%T)",
			m.Type, describe(value), value), nil
	case *ArrayHeadTail, *ArrayExact, *Splat, *NamedSplat:
		seq, ok := asSequence(value)
		if !ok {
			span := m.Span()
			if ht, isChain := m.(*ArrayHeadTail); isChain {
				span = ht.Outer
			}
			return ev.fail(span, path, value, "expected an array, got %s", describe(value)), nil
		}
		return ev.matchSeq(m, seq, path, 0)
	case *ExtractorCall:
		return ev.extract(m, value, path)
	case *Aliased:
		ok, err := ev.match(m.Inner, value, path)
		if ok {
			ev.bind(m.Name, value)
		}
		return ok, err
	case *And:
		ok, err := ev.match(m.Left, value, path)
		if !ok || err != nil {
			return false, err
		}
		return ev.match(m.Right, value, path)
	}
	panic(fmt.Sprintf("matcher: unknown matcher %T", m))
}

// matchSeq matches the remainder seq of the sequence at path, starting at
// index idx of that sequence, against a chain of sequence matchers.
func (ev *evaluation) matchSeq(m Matcher, seq []any, path string, idx int) (bool, error) {
	switch m := m.(type) {
	case *ArrayHeadTail:
		if len(seq) == 0 {
			return ev.fail(m.Pos, ev.index(path, idx), nil,
				"expected more than %d element(s)", idx), nil
		}
		ok, err := ev.match(m.Head, seq[0], ev.index(path, idx))
		if !ok || err != nil {
			return false, err
		}
		return ev.matchSeq(m.Tail, seq[1:], path, idx+1)
	case *ArrayExact:
		if len(seq) != len(m.Elements) {
			if len(m.Elements) == 0 {
				return ev.fail(m.Pos, ev.index(path, idx), seq[0],
					"expected end of array, got %d more element(s) starting with %s",
					len(seq), describe(seq[0])), nil
			}
			return ev.fail(m.Pos, path, seq, "expected %d element(s), got %d",
				idx+len(m.Elements), idx+len(seq)), nil
		}
		for i, elem := range m.Elements {
			ok, err := ev.match(elem, seq[i], ev.index(path, idx+i))
			if !ok || err != nil {
				return false, err
			}
		}
		return true, nil
	case *Splat:
		return true, nil
	case *NamedSplat:
		rest := make([]any, len(seq))
		copy(rest, seq)
		ev.bind(m.Name, rest)
		return true, nil
	}
	return ev.match(m, seq, path)
}

func (ev *evaluation) extract(m *ExtractorCall, value any, path string) (bool, error) {
	if ev.extractors == nil {
		return false, &extractor.NotFoundError{Name: m.Name}
	}
	res, err := ev.extractors.Apply(m.Name, value)
	if err != nil {
		return false, err
	}
	payload := ""
	if ev.record {
		payload = path + "." + m.Name
	}
	switch r := res.(type) {
	case extractor.NoMatch:
		return ev.fail(m.Pos, path, value, "extractor %s does not match %s", m.Name, describe(value)), nil
	case extractor.Boolean:
		if r.Value {
			return true, nil
		}
		return ev.fail(m.Pos, path, value, "extractor %s rejects %s", m.Name, describe(value)), nil
	case extractor.Scalar:
		return ev.matchSeq(m.Args, []any{r.Value}, payload, 0)
	case extractor.Tuple:
		return ev.matchSeq(m.Args, r.Values, payload, 0)
	}
	return false, &extractor.ProtocolError{Name: m.Name, Result: res}
}
