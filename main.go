package main

import (
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/lambda-feedback/samplefn/cmd"
	"github.com/lambda-feedback/samplefn/util"
)

// set at build time with -ldflags "-X main.Version=..."
var (
	Version   string
	Buildtime string
	Commit    string
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := initSentry(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "sentry init failed: %s\n", err)
		os.Exit(1)
	}

	compiled, _ := time.Parse(time.RFC3339, Buildtime)

	code := cmd.Execute(cmd.ExecuteParams{
		Version:  version(),
		Compiled: compiled,
	})

	// os.Exit skips deferred calls, so flush explicitly
	sentry.Flush(sentryFlushTimeout)

	os.Exit(code)
}

func version() string {
	if Version == "" {
		return "local"
	}

	return Version
}

// initSentry enables crash reporting if SENTRY_DSN is set.
func initSentry(getenv func(string) string) error {
	dsn := getenv("SENTRY_DSN")
	if dsn == "" {
		return nil
	}

	environment := getenv("SENTRY_ENVIRONMENT")
	if environment == "" {
		environment = "local"
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Debug:            util.Truthy(getenv("SENTRY_DEBUG")),
		EnableTracing:    true,
		TracesSampleRate: 1.0,
		Environment:      environment,
		Release:          Commit,
	})
}
