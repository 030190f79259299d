package regclient

import "fmt"

// InvalidEnumError indicates a request field held a value outside its closed
// set. It is raised before any request is issued.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

// APIError is a non-2xx registry response, decoded from the standard
// {"type":..., "message":...} error envelope.
type APIError struct {
	StatusCode int
	Type       string `json:"type"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Type == "" && e.Message == "" {
		return fmt.Sprintf("registry: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("registry: HTTP %d: %s: %s", e.StatusCode, e.Type, e.Message)
}
