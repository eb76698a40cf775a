package openai

import "fmt"

// MissingCredentialError is returned when the api key can't be found in the environment.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%v env var not set. Export it first", e.EnvVar)
}

// TransportError wraps failures to complete the http exchange, such as
// an unreachable network, tls failures or timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is a response with a non-success status code.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("API error: %v - %v", e.StatusCode, e.Body)
}
