package matcher

import (
	"fmt"

	"github.com/npillmayer/fpmatch/syntax"
)

// Explain returns a human-readable description of why value does not match,
// quoting the offending part of value and underlining the failing
// sub-pattern. The boolean result is false if value matches.
func (c *Compiled) Explain(value any, ext Applier) (string, bool, error) {
	f, err := c.Diagnose(value, ext)
	if err != nil || f == nil {
		return "", false, err
	}
	return f.Render(c.Text), true, nil
}

// Render formats the failure for pattern text src:
//
//	mismatch at value[1]: expected 2, got 1 (line 1, column 5)
//	  [2, 2]
//	      ^
func (f *Failure) Render(src string) string {
	return fmt.Sprintf("mismatch at %s: %s (line %d, column %d)\n%s",
		f.Path, f.Reason, f.Span.Line, f.Span.Column, syntax.Underline(src, f.Span))
}
