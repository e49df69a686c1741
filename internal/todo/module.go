package todo

import "go.uber.org/fx"

// Module provides the todo client.
func Module(config Config) fx.Option {
	return fx.Module(
		"todo",
		// provide client config
		fx.Supply(config),
		// provide client
		fx.Provide(NewClient),
	)
}
