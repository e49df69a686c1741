package shell

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Shell runs an fx application until it is asked to stop.
type Shell struct {
	log     *zap.Logger
	options []fx.Option
}

// New creates a shell whose applications always include options.
func New(log *zap.Logger, options ...fx.Option) *Shell {
	return &Shell{
		log:     log,
		options: options,
	}
}

// Run starts an application built from the shell options and options,
// blocks until it receives a stop signal and shuts it down. A non-zero
// exit code is reported as an *ExitError. If ctx is already done, the
// application is not started and Run returns nil.
func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	defer s.log.Sync()

	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	app := s.App(appCtx, options...)
	if err := app.Err(); err != nil {
		s.log.Error("invalid application graph", zap.Error(err))
		return NewExitError(1)
	}

	// stopped before it started, nothing to start or stop
	if ctx.Err() != nil {
		s.log.Info("stopped before start", zap.Error(ctx.Err()))
		return nil
	}

	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		s.log.Error("failed to start", zap.Error(err))
		return NewExitError(1)
	}

	var exitCode int
	select {
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
	case <-ctx.Done():
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()

	if err := app.Stop(stopCtx); err != nil {
		s.log.Error("failed to stop", zap.Error(err))
		return NewExitError(1)
	}

	if exitCode != 0 {
		return NewExitError(exitCode)
	}

	return nil
}

// App builds the fx application without starting it.
func (s *Shell) App(ctx context.Context, options ...fx.Option) *fx.App {
	return fx.New(
		// inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// inject the logger
		fx.Supply(s.log),

		// use the logger also for fx' logs
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: s.log.Named("fx")}
		}),

		// shell options
		fx.Options(s.options...),

		// run options
		fx.Options(options...),
	)
}
