// Package lambda serves the function as an AWS Lambda runtime client.
package lambda

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/handler"
	"github.com/lambda-feedback/samplefn/util/logging"
)

// Module feeds Lambda proxy events of config.ProxySource into the
// function routes.
func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		fx.Supply(config),
		logging.DecorateLogger("lambda", zap.Stringer("proxy_source", config.ProxySource)),
		handler.Module(),
		fx.Provide(NewLifecycleHandler),
		// the handler registers its hooks when constructed
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
