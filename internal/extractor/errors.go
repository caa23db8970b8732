package extractor

import "fmt"

// Error marks a failure inside the extraction call itself: network faults,
// non-2xx API responses, truncated output, or responses that do not honor
// the requested schema. The processing task classifies these separately
// from unexpected failures.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as an extraction error attributed to provider.
func NewError(provider string, err error) *Error {
	return &Error{Provider: provider, Err: err}
}
