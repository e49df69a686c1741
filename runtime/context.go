package runtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Context is handed to a function for the duration of one invocation.
// It must not be retained after the function returns.
type Context struct {
	// ID uniquely identifies the invocation.
	ID string

	// Req is the invocation request.
	Req Request

	// Res builds the invocation response.
	Res ResponseBuilder

	// Env is the read-only process environment.
	Env Environment

	mu     sync.Mutex
	logs   []string
	errors []string
	log    *zap.Logger
}

// NewContext creates an invocation context. Messages passed to Log and
// Error are forwarded to log, which may be nil.
func NewContext(id string, req Request, env Environment, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}

	return &Context{
		ID:  id,
		Req: req,
		Env: env,
		log: log,
	}
}

// Log records an informational message for the invocation.
func (c *Context) Log(message string) {
	c.mu.Lock()
	c.logs = append(c.logs, message)
	c.mu.Unlock()

	c.log.Info(message)
}

// Error records an error message for the invocation.
func (c *Context) Error(message string) {
	c.mu.Lock()
	c.errors = append(c.errors, message)
	c.mu.Unlock()

	c.log.Warn(message)
}

// Logs returns the messages recorded by Log.
func (c *Context) Logs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.logs...)
}

// Errors returns the messages recorded by Error.
func (c *Context) Errors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.errors...)
}

// ResponseOption customizes a response built by ResponseBuilder.
type ResponseOption func(*Response)

// WithStatus overrides the response status code.
func WithStatus(status int) ResponseOption {
	return func(r *Response) {
		r.StatusCode = status
	}
}

// WithHeader sets a response header.
func WithHeader(key, value string) ResponseOption {
	return func(r *Response) {
		r.Header.Set(key, value)
	}
}

// ResponseBuilder creates function responses.
type ResponseBuilder struct{}

// JSON encodes v as the response body.
func (ResponseBuilder) JSON(v any, opts ...ResponseOption) (Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Response{}, err
	}

	return build(http.StatusOK, "application/json", body, opts), nil
}

// Send returns body as a plain text response.
func (ResponseBuilder) Send(body string, opts ...ResponseOption) Response {
	return build(http.StatusOK, "text/plain; charset=utf-8", []byte(body), opts)
}

// Empty returns a response without a body.
func (ResponseBuilder) Empty(opts ...ResponseOption) Response {
	return build(http.StatusNoContent, "", nil, opts)
}

func build(status int, contentType string, body []byte, opts []ResponseOption) Response {
	res := Response{
		StatusCode: status,
		Body:       body,
		Header:     make(http.Header),
	}

	if contentType != "" {
		res.Header.Set("Content-Type", contentType)
	}

	for _, opt := range opts {
		opt(&res)
	}

	return res
}
