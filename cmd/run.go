package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/util/logging"
)

const (
	modeLambda     = "lambda"
	modeStandalone = "standalone"
)

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "Start in Lambda or standalone mode, depending on the environment.",
	Description: `The run command picks the mode from the environment, so
the same image can be deployed to AWS Lambda and to plain
container platforms.

With AWS_LAMBDA_RUNTIME_API set, it behaves like the lambda
command. Otherwise it behaves like the serve command.`,
	Action: runAction,
}

func runAction(ctx *cli.Context) error {
	log, err := logging.FromContext(ctx.Context)
	if err != nil {
		return err
	}

	mode := detectMode(os.LookupEnv)

	log.Info("detected execution environment", zap.String("mode", mode))

	if mode == modeLambda {
		return lambdaAction(ctx)
	}

	return serveAction(ctx)
}

// detectMode chooses the mode from the variables visible through lookup.
func detectMode(lookup func(string) (string, bool)) string {
	if api, ok := lookup("AWS_LAMBDA_RUNTIME_API"); ok && api != "" {
		return modeLambda
	}

	return modeStandalone
}

func init() {
	runCmd.Flags = append(runCmd.Flags, serveCmd.Flags...)
	runCmd.Flags = append(runCmd.Flags, lambdaCmd.Flags...)

	rootApp.Commands = append(rootApp.Commands, runCmd)
}
