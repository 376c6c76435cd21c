package fpmatch

import (
	"github.com/npillmayer/fpmatch/extractor"
	"github.com/npillmayer/fpmatch/matcher"
	"github.com/npillmayer/fpmatch/maybe"
	"github.com/npillmayer/fpmatch/syntax"
	"github.com/pkg/errors"
)

// Error types, re-exported for clients which do not import the
// sub-packages. Use errors.As to check for them.
type (
	PatternSyntaxError     = syntax.Error
	ExtractorNotFound      = extractor.NotFoundError
	ExtractorProtocolError = extractor.ProtocolError
)

// Bindings maps names bound by a pattern to parts of the matched value.
type Bindings = matcher.Bindings

// Symbol is the Go type of pattern symbols like ':ok'. Values of type string
// never match symbols and vice versa.
type Symbol = matcher.Symbol

// Pattern is a compiled pattern. Patterns are immutable and may be shared
// between goroutines.
type Pattern struct {
	compiled *matcher.Compiled
	registry *extractor.Registry
}

// Text returns the pattern text p was compiled from.
func (p *Pattern) Text() string {
	return p.compiled.Text
}

// Matches reports whether value conforms to p. An error is returned only if
// an extractor call fails, i.e. the extractor is not registered or returns
// an invalid result.
func (p *Pattern) Matches(value any) (bool, error) {
	ok, err := p.compiled.Matches(value, p.registry)
	if err != nil {
		return false, p.wrap(err)
	}
	return ok, nil
}

// Extract returns the bindings of p for value, or Nothing if value does
// not match.
func (p *Pattern) Extract(value any) (maybe.Maybe[Bindings], error) {
	ok, b, err := p.bind(value)
	if err != nil {
		return maybe.Nothing[Bindings](), err
	}
	return maybe.Of(b, ok), nil
}

// Bindings returns the bindings of p for value. If value does not match,
// the result is an empty map; use Extract to tell a mismatch from a match
// without bindings.
func (p *Pattern) Bindings(value any) (Bindings, error) {
	b, err := p.compiled.Bindings(value, p.registry)
	if err != nil {
		return nil, p.wrap(err)
	}
	return b, nil
}

// Explain returns a description of the first point where value fails to
// match p, or Nothing if value matches.
func (p *Pattern) Explain(value any) (maybe.Maybe[string], error) {
	msg, mismatch, err := p.compiled.Explain(value, p.registry)
	if err != nil {
		return maybe.Nothing[string](), p.wrap(err)
	}
	return maybe.Of(msg, mismatch), nil
}

// String renders the matcher tree of p.
func (p *Pattern) String() string {
	return p.compiled.Dump()
}

func (p *Pattern) bind(value any) (bool, Bindings, error) {
	b, ok, err := p.compiled.Extract(value, p.registry)
	if err != nil {
		return false, nil, p.wrap(err)
	}
	return ok, b, nil
}

func (p *Pattern) wrap(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithMessagef(err, "matching pattern %q", p.compiled.Text)
}
