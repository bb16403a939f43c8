package nhle

import "fmt"

// StatusError reports a non-2xx response. Non-fatal: the unit of work that
// hit it contributes no data and the pipeline moves on.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// ParseError reports a response body that did not match the expected schema.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
