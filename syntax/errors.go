package syntax

import "fmt"

// Error is a syntax error in pattern text. It is also used for semantic
// violations detected while compiling a parse tree, e.g. misplaced splats.
type Error struct {
	Line    int    // 1-based
	Column  int    // 1-based, in runes
	Offset  int    // byte offset into Source
	Message string // what went wrong
	Snippet string // offending fragment of pattern text
	Source  string // complete pattern text
}

// Errorf creates an error located at span of src.
func Errorf(src string, span Span, format string, args ...any) *Error {
	return &Error{
		Line:    span.Line,
		Column:  span.Column,
		Offset:  span.Offset,
		Message: fmt.Sprintf(format, args...),
		Snippet: span.Text(src),
		Source:  src,
	}
}

func (e *Error) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("pattern syntax error at line %d, column %d: %s",
			e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("pattern syntax error at line %d, column %d: %s (near %q)",
		e.Line, e.Column, e.Message, e.Snippet)
}

// Detail returns the error message followed by the offending line of
// pattern text, with the error position underlined.
func (e *Error) Detail() string {
	span := Span{Offset: e.Offset, Length: len(e.Snippet), Line: e.Line, Column: e.Column}
	return e.Error() + "\n" + Underline(e.Source, span)
}
