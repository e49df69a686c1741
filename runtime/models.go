package runtime

import "net/http"

// Request represents an incoming invocation request, independent of
// the transport it arrived on.
type Request struct {
	// Method is the upper-cased HTTP method.
	Method string

	// URL is the full request URL, including scheme, host and query.
	URL string

	// Path is the path component of URL.
	Path string

	// Header holds the request headers.
	Header http.Header

	// Body is the fully materialized request body.
	Body []byte
}

// BodyText returns the request body as a string.
func (r Request) BodyText() string {
	return string(r.Body)
}

// Response represents an outgoing invocation response.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header

	// Logs and Errors are the lines the function wrote through
	// Context.Log and Context.Error, in order. Set by the runtime handler.
	Logs   []string
	Errors []string
}
