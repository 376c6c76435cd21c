package fpmatch

import (
	"github.com/npillmayer/fpmatch/maybe"
	"github.com/npillmayer/fpmatch/result"
	"github.com/pkg/errors"
)

// ErrNoCaseMatched is the error of Dispatch results if no case applies to
// the value.
var ErrNoCaseMatched = errors.New("fpmatch: no case matched")

// --- Cases -----------------------------------------------------------------

// Case is one alternative of a dispatch: a pattern, an optional guard and a
// body producing a T from the bindings of the pattern.
type Case[T any] struct {
	pattern *Pattern
	err     error // compile error, reported on dispatch
	guard   func(Bindings) bool
	body    func(Bindings) T
}

// On creates a case for pattern text, compiled with the default engine.
// A syntax error in text is reported when the case is first dispatched to.
func On[T any](text string, body func(Bindings) T) Case[T] {
	p, err := Compile(text)
	return Case[T]{pattern: p, err: err, body: body}
}

// OnPattern creates a case for an already compiled pattern.
func OnPattern[T any](p *Pattern, body func(Bindings) T) Case[T] {
	return Case[T]{pattern: p, body: body}
}

// When returns a copy of c which applies only if guard holds for the
// bindings of the pattern. Guards are called only if the pattern matches.
func (c Case[T]) When(guard func(Bindings) bool) Case[T] {
	c.guard = guard
	return c
}

// apply evaluates c for value. It returns Nothing if the pattern does not
// match or the guard rejects the bindings.
func (c Case[T]) apply(value any) (maybe.Maybe[T], error) {
	if c.err != nil {
		return maybe.Nothing[T](), c.err
	}
	m, err := c.pattern.Extract(value)
	if err != nil {
		return maybe.Nothing[T](), err
	}
	b, ok := m.Get()
	if !ok || (c.guard != nil && !c.guard(b)) {
		return maybe.Nothing[T](), nil
	}
	return maybe.Just(c.body(b)), nil
}

// --- Dispatch --------------------------------------------------------------

// Match tries cases in order and returns the result of the body of the
// first case which applies to value, or Nothing if none does. Cases after
// the first applicable one are not evaluated. Errors stem from invalid
// patterns or failing extractor calls and stop the dispatch.
func Match[T any](value any, cases ...Case[T]) (maybe.Maybe[T], error) {
	for i, c := range cases {
		r, err := c.apply(value)
		if err != nil {
			return maybe.Nothing[T](), errors.WithMessagef(err, "case #%d", i)
		}
		if r.IsJust() {
			tracer().Debugf("value %v matched case #%d", value, i)
			return r, nil
		}
	}
	return maybe.Nothing[T](), nil
}

// Dispatch is like Match, but reports both errors and the absence of an
// applicable case (ErrNoCaseMatched) as an Err result.
func Dispatch[T any](value any, cases ...Case[T]) result.Result[T] {
	r, err := Match(value, cases...)
	if err != nil {
		return result.Err[T](err)
	}
	if v, ok := r.Get(); ok {
		return result.Ok(v)
	}
	return result.Err[T](errors.WithMessagef(ErrNoCaseMatched, "value %v", value))
}

// PartialFunc bundles cases into a function defined for the values at
// least one of the cases applies to.
func PartialFunc[T any](cases ...Case[T]) func(any) result.Result[T] {
	return func(value any) result.Result[T] {
		return Dispatch(value, cases...)
	}
}
