package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/samplefn/app"
	"github.com/lambda-feedback/samplefn/app/invoke"
	"github.com/lambda-feedback/samplefn/util/conf"
	"github.com/lambda-feedback/samplefn/util/logging"
)

var (
	invokeCmdDescription = `The invoke command runs the function once, without starting
a server. The response body is written to stdout.

The command exits with a non-zero code if the function
responds with a non-2xx status.`
	invokeCmd = &cli.Command{
		Name:        "invoke",
		Usage:       "Invoke the function once and print the response.",
		Description: invokeCmdDescription,
		Action:      invokeAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "body",
				Aliases:  []string{"b"},
				Usage:    "the request body.",
				Category: "invoke",
			},
			&cli.StringFlag{
				Name:     "url",
				Usage:    "the request url passed to the function.",
				Value:    "http://localhost/",
				Category: "invoke",
			},
			&cli.StringFlag{
				Name:     "method",
				Aliases:  []string{"X"},
				Usage:    "the request method.",
				Value:    "POST",
				Category: "invoke",
			},
		},
	}
)

func invokeAction(ctx *cli.Context) error {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return err
	}

	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[invoke.Config](conf.ParseOptions{
		Defaults:  invoke.DefaultConfig,
		EnvPrefix: "INVOKE",
		Log:       log,
		Cli:       ctx,
	})
	if err != nil {
		return err
	}

	return shell.Run(ctx.Context, invoke.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, invokeCmd)
}
