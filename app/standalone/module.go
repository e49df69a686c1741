// Package standalone serves the function over plain http.
package standalone

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/handler"
	"github.com/lambda-feedback/samplefn/internal/server"
	"github.com/lambda-feedback/samplefn/util/logging"
)

// Module mounts the function routes on an http server listening on
// the address in config.
func Module(config server.HttpConfig) fx.Option {
	return fx.Module(
		"serve",
		logging.DecorateLogger("serve", zap.String("mode", "standalone")),
		handler.Module(),
		server.Module(config),
	)
}
