package extractor

// Result is the outcome of applying an extractor to a value. It is one of
// NoMatch, Scalar, Tuple or Boolean.
type Result interface {
	isResult()
}

// NoMatch signals that the extractor does not apply to the value.
type NoMatch struct{}

// Scalar is a single extracted payload. It is matched against the argument
// patterns as a one-element sequence.
type Scalar struct {
	Value any
}

// Tuple is a sequence of extracted payloads, matched positionally against the
// argument patterns.
type Tuple struct {
	Values []any
}

// Boolean makes the extractor a predicate. Argument patterns are not
// consulted.
type Boolean struct {
	Value bool
}

func (NoMatch) isResult() {}
func (Scalar) isResult()  {}
func (Tuple) isResult()   {}
func (Boolean) isResult() {}

// Func is an extractor function.
type Func func(value any) Result

// Values is a shorthand for a Tuple result.
func Values(values ...any) Result {
	return Tuple{Values: values}
}

// Optional returns Scalar{v} if ok holds, NoMatch otherwise.
func Optional(v any, ok bool) Result {
	if ok {
		return Scalar{Value: v}
	}
	return NoMatch{}
}
