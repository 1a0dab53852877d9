package api

import "fmt"

// NetworkError indicates the request never produced an HTTP response
// (DNS failure, refused connection, timeout).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError indicates the response was not the JSON the API promises,
// e.g. an HTML error page from a misconfigured backend. RawBody carries the
// response text for diagnosis.
type ProtocolError struct {
	ContentType string
	RawBody     string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("expected JSON but got %q: %s", e.ContentType, e.RawBody)
}

// APIError is a well-formed error response from the backend: authentication
// failure, validation failure, not-found and the like.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
