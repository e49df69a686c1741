package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/config"
	"github.com/lambda-feedback/samplefn/function"
	"github.com/lambda-feedback/samplefn/internal/shell"
	"github.com/lambda-feedback/samplefn/internal/todo"
	"github.com/lambda-feedback/samplefn/runtime"
	"github.com/lambda-feedback/samplefn/util/conf"
	"github.com/lambda-feedback/samplefn/util/logging"
)

// New creates a shell for the logger and config found in the cli context.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return NewShell(log, cfg), nil
}

// NewShell creates a shell running every application with SharedModule.
func NewShell(log *zap.Logger, cfg config.Config) *shell.Shell {
	return shell.New(log, SharedModule(cfg))
}

// SharedModule wires the function and the runtime that invokes it.
// Transport modules only need to consume runtime.Handler.
func SharedModule(cfg config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide function variables
		fx.Provide(func() (runtime.Environment, error) {
			return runtime.LoadEnvironment(cfg.EnvFile)
		}),
		// provide todo client
		todo.Module(cfg.Todo),
		// provide function
		function.Module(),
		// provide runtime
		runtime.Module(cfg.Runtime),
	)
}
