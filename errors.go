package storelingo

import "fmt"

// ConfigurationError indicates a missing credential or client. Fatal to the
// requested operation; surfaced immediately, never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ValidationError indicates invalid user input (no fields selected, no items
// selected). Surfaced before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ProviderError indicates a translation model failure (API error, empty
// response, etc.).
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// UpstreamError indicates a content store call failure (non-2xx status or
// transport error).
type UpstreamError struct {
	Status  int // HTTP status, 0 for transport failures
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("store error (status %d): %s", e.Status, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// CountMismatchError reports that a model response decoded to a different
// number of translations than the batch requested. It is advisory: decoding
// still yields a full-length result with the missing tail echoing source text.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translation count mismatch: expected %d, got %d", e.Expected, e.Got)
}
