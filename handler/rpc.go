package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/config"
	"github.com/lambda-feedback/samplefn/runtime"
)

// RPCNamespace prefixes the JSON-RPC methods, e.g. function_invoke.
const RPCNamespace = "function"

// InvokeRequest is the JSON-RPC form of an invocation request.
type InvokeRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    string            `json:"body"`
}

// InvokeResponse is the JSON-RPC form of an invocation response.
type InvokeResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
	Logs       []string          `json:"logs"`
	Errors     []string          `json:"errors"`
}

// RPCService exposes the function as JSON-RPC methods.
type RPCService struct {
	handler runtime.Handler
	log     *zap.Logger
}

// Invoke runs one invocation. Function errors are part of the
// response; only an unparsable url fails the call.
func (s *RPCService) Invoke(ctx context.Context, req InvokeRequest) (*InvokeResponse, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, err
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodPost
	}

	header := make(http.Header, len(req.Headers))
	for k, v := range req.Headers {
		header.Set(k, v)
	}

	res := s.handler.Handle(ctx, runtime.Request{
		Method: method,
		URL:    u.String(),
		Path:   u.Path,
		Header: header,
		Body:   []byte(req.Body),
	})

	s.log.Debug("rpc invocation done", zap.Int("status", res.StatusCode))

	headers := make(map[string]string, len(res.Header))
	for k := range res.Header {
		headers[k] = res.Header.Get(k)
	}

	return &InvokeResponse{
		StatusCode: res.StatusCode,
		Headers:    headers,
		Body:       string(res.Body),
		Logs:       nonNil(res.Logs),
		Errors:     nonNil(res.Errors),
	}, nil
}

type RPCServerParams struct {
	fx.In

	Handler   runtime.Handler
	Lifecycle fx.Lifecycle
	Log       *zap.Logger
}

// NewRPCServer creates a JSON-RPC server with the function service
// registered. The server is stopped with the application.
func NewRPCServer(params RPCServerParams) (*rpc.Server, error) {
	server := rpc.NewServer()

	service := &RPCService{
		handler: params.Handler,
		log:     params.Log.Named("rpc"),
	}

	if err := server.RegisterName(RPCNamespace, service); err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.StopHook(server.Stop))

	return server, nil
}

// newRPCHandler serves server over http, behind the auth check.
func newRPCHandler(server *rpc.Server, cfg config.Config) http.Handler {
	return requireSecret(cfg.Auth.Key, server)
}

// nonNil keeps empty line lists as [] on the wire.
func nonNil(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
