package models

import (
	"fmt"
	"strings"
)

// previewLimit bounds how much of an upstream body is kept for diagnostics.
const previewLimit = 120

// HTTPError reports an upstream response outside the 2xx range.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// ContentTypeError reports an upstream response whose declared content type
// is not JSON. Proxied Hacienda endpoints are known to return HTML error
// pages with a 200 status, so the status code alone cannot be trusted.
type ContentTypeError struct {
	ContentType string
	Preview     string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("upstream returned non-JSON content type %q: %s", e.ContentType, e.Preview)
}

// ParseError reports a body that declared JSON but failed to parse.
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("upstream returned malformed JSON: %s", e.Preview)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NetworkError reports a transport-level failure before any response arrived.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("upstream request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError reports locally rejected input. It never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BodyPreview returns the first 120 characters of a body with whitespace
// runs collapsed to single spaces, for use in error diagnostics.
func BodyPreview(body string) string {
	collapsed := strings.Join(strings.Fields(body), " ")
	runes := []rune(collapsed)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit])
	}
	return collapsed
}
