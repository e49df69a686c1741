package invoke

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/samplefn/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"invoke",
		// provide invoke config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("invoke"),
		// provide invoker
		fx.Provide(NewLifecycleInvoker),
		// invoke invoker
		fx.Invoke(func(*Invoker) {}),
	)
}
