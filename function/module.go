package function

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/samplefn/internal/todo"
	"github.com/lambda-feedback/samplefn/runtime"
)

// Module provides the function as the runtime.Function, along with its
// error mapping.
func Module() fx.Option {
	return fx.Module(
		"function",
		// fetch todos with the todo client
		fx.Provide(func(c *todo.Client) TodoFetcher { return c }),
		// provide handler as the runtime function
		fx.Provide(fx.Annotate(NewHandler, fx.As(new(runtime.Function)))),
		// provide error mapping
		fx.Supply(StatusCodes),
	)
}
