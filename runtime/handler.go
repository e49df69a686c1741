package runtime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InvocationIDHeader carries the invocation id on every response.
const InvocationIDHeader = "X-Invocation-Id"

var (
	ErrFunctionPanic = errors.New("function panicked")
)

var wellKnownErrors = ErrorStatus{
	ErrFunctionPanic:         http.StatusInternalServerError,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// ErrorStatus maps errors returned by a function to response status
// codes. Errors are matched with errors.Is.
type ErrorStatus map[error]int

// Function is the user code run for every invocation.
type Function interface {
	Main(ctx context.Context, c *Context) (Response, error)
}

// FunctionFunc adapts a plain function to the Function interface.
type FunctionFunc func(ctx context.Context, c *Context) (Response, error)

func (f FunctionFunc) Main(ctx context.Context, c *Context) (Response, error) {
	return f(ctx, c)
}

// Handler is the interface for handling runtime requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// HandlerParams defines the dependencies for the runtime handler.
type HandlerParams struct {
	fx.In

	Function Function

	Config Config

	Environment Environment

	// ErrorStatus holds the function specific error mapping.
	ErrorStatus ErrorStatus `optional:"true"`

	Log *zap.Logger
}

// RuntimeHandler runs a function for each request it handles.
type RuntimeHandler struct {
	function Function
	timeout  time.Duration
	env      Environment
	errors   ErrorStatus

	log *zap.Logger
}

var _ Handler = (*RuntimeHandler)(nil)

// NewRuntimeHandler creates a new runtime handler.
func NewRuntimeHandler(params HandlerParams) Handler {
	return &RuntimeHandler{
		function: params.Function,
		timeout:  params.Config.Timeout,
		env:      params.Environment,
		errors:   params.ErrorStatus,
		log:      params.Log,
	}
}

// Handle runs the function for req. It never fails: function errors
// are mapped to error responses.
func (h *RuntimeHandler) Handle(ctx context.Context, req Request) Response {
	id := uuid.NewString()

	log := h.log.With(
		zap.String("invocation_id", id),
		zap.String("path", req.Path),
		zap.String("method", req.Method),
	)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	c := NewContext(id, req, h.env, h.log.Named("function").With(zap.String("invocation_id", id)))

	start := time.Now()

	res, err := h.invoke(ctx, c)
	if err != nil {
		status := h.statusCode(err)
		if status >= http.StatusInternalServerError {
			log.Error("function failed", zap.Error(err), zap.Int("status", status))
			sentry.CaptureException(err)
		} else {
			log.Debug("function rejected request", zap.Error(err), zap.Int("status", status))
		}

		res = newErrorResponse(status, err)
	}

	if res.Header == nil {
		res.Header = make(http.Header)
	}
	res.Header.Set(InvocationIDHeader, id)

	if res.StatusCode == 0 {
		res.StatusCode = http.StatusOK
	}

	res.Logs = c.Logs()
	res.Errors = c.Errors()

	log.Debug("invocation finished",
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("logs", len(res.Logs)),
		zap.Int("errors", len(res.Errors)),
	)

	return res
}

func (h *RuntimeHandler) invoke(ctx context.Context, c *Context) (res Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFunctionPanic, r)
		}
	}()

	return h.function.Main(ctx, c)
}

// statusCode returns the status code for err, preferring the function
// specific mapping over the runtime's own errors.
func (h *RuntimeHandler) statusCode(err error) int {
	for _, table := range []ErrorStatus{h.errors, wellKnownErrors} {
		for target, status := range table {
			if errors.Is(err, target) {
				return status
			}
		}
	}

	return http.StatusInternalServerError
}
