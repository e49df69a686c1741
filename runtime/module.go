package runtime

import "go.uber.org/fx"

// Module provides the Handler that transports invoke. The Function and
// the Environment come from outside the module; an ErrorStatus table
// may be supplied to map function errors to status codes.
func Module(config Config) fx.Option {
	return fx.Module(
		"runtime",
		fx.Supply(config),
		fx.Provide(NewRuntimeHandler),
	)
}
