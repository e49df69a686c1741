package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/internal/server"
)

type LambdaHandlerParams struct {
	fx.In

	Config Config

	// Handlers are the routes events are dispatched to.
	Handlers []*server.HttpHandler `group:"handlers"`

	// Context bounds the lifetime of the runtime client.
	Context context.Context

	Logger *zap.Logger
}

// LambdaHandler runs the AWS Lambda runtime client and dispatches each
// proxy event to the function routes.
type LambdaHandler struct {
	source ProxySource
	routes http.Handler
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		source: params.Config.ProxySource,
		routes: server.NewMux(params.Handlers),
		ctx:    ctx,
		cancel: cancel,
		log:    params.Logger,
	}
}

// NewLifecycleHandler creates a LambdaHandler that starts and stops with
// the application.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	h := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return h.Start()
		},
		OnStop: func(context.Context) error {
			h.Shutdown()
			return nil
		},
	})
	return h
}

// Start validates the proxy source and runs the runtime client in the
// background. The client polls for events until Shutdown is called.
func (h *LambdaHandler) Start() error {
	proxy, err := proxyFunction(h.source, h.routes)
	if err != nil {
		return err
	}

	h.log.Info("starting lambda runtime client")

	go lambda.StartWithOptions(proxy,
		lambda.WithContext(h.ctx),
		lambda.WithEnableSIGTERM(func() {
			h.log.Info("received SIGTERM")
		}),
	)

	return nil
}

func (h *LambdaHandler) Shutdown() {
	h.cancel()
}

// proxyFunction returns a lambda handler function that converts events
// of the given source into http requests served by routes.
func proxyFunction(source ProxySource, routes http.Handler) (any, error) {
	source, err := ParseProxySource(source.String())
	if err != nil {
		return nil, err
	}

	switch source {
	case ProxySourceApiGatewayV1:
		return httpadapter.New(routes).ProxyWithContext, nil
	case ProxySourceApiGatewayV2:
		return httpadapter.NewV2(routes).ProxyWithContext, nil
	default:
		return httpadapter.NewALB(routes).ProxyWithContext, nil
	}
}
