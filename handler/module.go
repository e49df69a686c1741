package handler

import "go.uber.org/fx"

// Module provides the http routes of the function.
func Module() fx.Option {
	return fx.Module("handler",
		fx.Provide(NewFunctionHandler),
		fx.Provide(NewFunctionRoute),
		fx.Provide(NewHealthRoute),
		fx.Provide(NewRPCServer),
		fx.Provide(NewRPCRoute),
	)
}
