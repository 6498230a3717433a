package gateway

import (
	"fmt"
)

// NetworkError covers transport failures, timeouts and non-2xx responses.
type NetworkError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s %s: status %d", e.Op, e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError means the backend answered 2xx with a body that could not be
// decoded.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
