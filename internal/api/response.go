package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnavailable wraps transport-level failures: DNS, refused
	// connections, timeouts. The user-facing advice is to check the
	// connection and retry manually.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrMalformedResponse marks a successful HTTP exchange whose body was
	// not valid JSON.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNotAuthenticated is returned by callers that require an active
	// session before issuing a request.
	ErrNotAuthenticated = errors.New("not authenticated. Please login first")
)

// fallbackBody substitutes for an error response whose body could not be
// parsed.
const fallbackMessage = "Server error occurred"

// Response is the uniform result of every API call. OK mirrors the HTTP
// status class; the body is returned parsed for every status, so callers
// branch on OK/Status and on the "success" field the backend includes,
// never on raised errors.
type Response struct {
	OK     bool
	Status int
	Body   map[string]any
}

// Success reports the backend's own success flag. Business-rule failures
// ("password incorrect") arrive as OK responses with Success() == false.
func (r *Response) Success() bool {
	v, ok := r.Body["success"].(bool)
	return ok && v
}

// Message returns the backend's message field, if any.
func (r *Response) Message() string {
	if v, ok := r.Body["message"].(string); ok {
		return v
	}
	return ""
}

// Decode unmarshals a body field into out. Pass an empty key to decode the
// whole body. Fields the backend omitted leave out untouched.
func (r *Response) Decode(key string, out any) error {

	source := any(r.Body)
	if len(key) > 0 {
		field, ok := r.Body[key]
		if !ok {
			return fmt.Errorf("response has no %q field", key)
		}
		source = field
	}

	data, err := json.Marshal(source)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, out)
}
