package server

import "go.uber.org/fx"

// Module serves the "handlers" group while the application runs.
func Module(config HttpConfig) fx.Option {
	return fx.Module(
		"http",
		fx.Supply(config),
		fx.Provide(NewLifecycleServer),
		// the server registers its hooks when constructed
		fx.Invoke(func(*HttpServer) {}),
	)
}
