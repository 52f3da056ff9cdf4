package api

import "fmt"

// StatusError is a terminal response from the API: an error status that
// retrying cannot fix. Message carries the documented meaning for
// recognized codes and "unknown status code" otherwise.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("keepa api error %d: %s", e.StatusCode, e.Message)
}

// Known reports whether the status code is one the API documents.
func (e *StatusError) Known() bool {
	_, ok := statusMessages[e.StatusCode]
	return ok
}

// TransportError is returned when the transient retry budget runs out
// without a single decodable response. Err is the last underlying cause.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("keepa: request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports a request rejected before any network traffic
// because an argument violates the API's documented limits.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("keepa: invalid %s: %s", e.Param, e.Reason)
}
