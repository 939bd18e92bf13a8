package vision

import "fmt"

// AuthError reports a missing or rejected API credential.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

// TransportError reports a failed round trip to the inference service:
// network errors, rate limits, and server-side failures. The call is not
// retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Anthropic API error: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a model reply that could not be parsed as
// JSON after fence-stripping.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("Failed to parse vision response as JSON: %s", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
