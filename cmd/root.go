package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/config"
	"github.com/lambda-feedback/samplefn/internal/shell"
	"github.com/lambda-feedback/samplefn/util/conf"
	"github.com/lambda-feedback/samplefn/util/logging"
)

var (
	appName  = "samplefn"
	appUsage = `A sample function that fetches a todo and echoes it back,
together with details about the invocation.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Args:            true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			// function flags
			&cli.StringFlag{
				Name:     "env-file",
				Usage:    "a dotenv file with variables for the function. Process env vars take precedence.",
				Category: "function",
				EnvVars:  []string{"ENV_FILE"},
			},
		},
		Before: before,
		After:  after,
	}
)

// before prepares the logger and the global config for all commands.
func before(ctx *cli.Context) error {
	log, err := createLogger(ctx)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx.Context = logging.WithLogger(ctx.Context, log)

	cfg, err := conf.Parse[config.Config](conf.ParseOptions{
		Defaults: config.DefaultConfig,
		Cli:      ctx,
		Log:      log,
	})
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	log.Debug("config loaded",
		zap.String("todo_base_url", cfg.Todo.BaseURL),
		zap.Duration("runtime_timeout", cfg.Runtime.Timeout),
		zap.Bool("auth", cfg.Auth.Key != ""),
	)

	ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

	return nil
}

func after(ctx *cli.Context) error {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		// Before failed, nothing to flush
		return nil
	}

	_ = log.Sync()

	return nil
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the cli with os.Args and returns the exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())

	return shell.ExitCode(err)
}

func createLogger(ctx *cli.Context) (*zap.Logger, error) {
	return logging.New(logging.Options{
		App:    appName,
		Level:  ctx.String("log-level"),
		Format: ctx.String("log-format"),
	})
}
