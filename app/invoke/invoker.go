package invoke

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/runtime"
)

type InvokerParams struct {
	fx.In

	Config     Config
	Handler    runtime.Handler
	Shutdowner fx.Shutdowner
	Log        *zap.Logger

	// Output receives the response body. Defaults to stdout.
	Output io.Writer `name:"invoke_output" optional:"true"`
}

// Invoker runs a single invocation and stops the application.
type Invoker struct {
	config     Config
	handler    runtime.Handler
	shutdowner fx.Shutdowner
	out        io.Writer
	log        *zap.Logger
}

func NewInvoker(params InvokerParams) *Invoker {
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	return &Invoker{
		config:     params.Config,
		handler:    params.Handler,
		shutdowner: params.Shutdowner,
		out:        out,
		log:        params.Log,
	}
}

// NewLifecycleInvoker creates an Invoker that runs once the
// application has started.
func NewLifecycleInvoker(params InvokerParams, lc fx.Lifecycle) *Invoker {
	invoker := NewInvoker(params)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// run outside the start hook, so the start timeout does not
			// limit the invocation
			go invoker.Run(context.Background())
			return nil
		},
	})
	return invoker
}

// Run invokes the function, writes the response body to the output and
// shuts down the application, with exit code 1 on a non-2xx status.
func (i *Invoker) Run(ctx context.Context) {
	code := 0

	res, err := i.Invoke(ctx)
	if err != nil {
		i.log.Error("invocation failed", zap.Error(err))
		code = 1
	} else if res.StatusCode < 200 || res.StatusCode > 299 {
		i.log.Warn("invocation returned error status", zap.Int("status", res.StatusCode))
		code = 1
	}

	if err := i.shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
		i.log.Error("failed to shut down", zap.Error(err))
	}
}

// Invoke sends the configured request through the runtime handler.
func (i *Invoker) Invoke(ctx context.Context) (runtime.Response, error) {
	req, err := i.request()
	if err != nil {
		return runtime.Response{}, err
	}

	res := i.handler.Handle(ctx, req)

	if _, err := i.out.Write(res.Body); err != nil {
		return res, fmt.Errorf("write response: %w", err)
	}

	return res, nil
}

func (i *Invoker) request() (runtime.Request, error) {
	u, err := url.Parse(i.config.URL)
	if err != nil {
		return runtime.Request{}, fmt.Errorf("invalid url %q: %w", i.config.URL, err)
	}

	method := strings.ToUpper(i.config.Method)
	if method == "" {
		method = http.MethodPost
	}

	header := http.Header{}
	if i.config.Body != "" {
		header.Set("Content-Type", "application/json")
	}

	return runtime.Request{
		Method: method,
		URL:    u.String(),
		Path:   u.Path,
		Header: header,
		Body:   []byte(i.config.Body),
	}, nil
}
