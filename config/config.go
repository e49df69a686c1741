package config

import (
	"github.com/lambda-feedback/samplefn/internal/todo"
	"github.com/lambda-feedback/samplefn/runtime"
	"github.com/lambda-feedback/samplefn/util/conf"
)

type AuthConfig struct {
	// Key is the shared secret callers must present. Empty disables auth.
	Key string `conf:"key"`
}

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// EnvFile is an optional dotenv file with function variables
	EnvFile string `conf:"env_file"`

	// Auth is the invocation auth configuration
	Auth AuthConfig `conf:"auth"`

	// Todo is the todo client configuration
	Todo todo.Config `conf:"todo"`

	// Runtime is the runtime configuration
	Runtime runtime.Config `conf:"runtime"`
}

var DefaultConfig = conf.MergeDefaults("",
	conf.MergeDefaults("todo", todo.DefaultConfig),
	conf.MergeDefaults("runtime", runtime.DefaultConfig),
)
