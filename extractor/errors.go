package extractor

import "fmt"

// NotFoundError is returned when an extractor call names an extractor which
// is neither registered nor derivable from the value's type.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("extractor %q not found", e.Name)
}

// ProtocolError is returned when an extractor function produces something
// other than one of the defined Result variants.
type ProtocolError struct {
	Name   string
	Result Result
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("extractor %q returned invalid result %#v", e.Name, e.Result)
}
