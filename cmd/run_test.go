package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unset", env: nil, want: modeStandalone},
		{name: "empty", env: map[string]string{"AWS_LAMBDA_RUNTIME_API": ""}, want: modeStandalone},
		{name: "set", env: map[string]string{"AWS_LAMBDA_RUNTIME_API": "127.0.0.1:9001"}, want: modeLambda},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectMode(lookupFrom(tt.env)))
		})
	}
}

func TestRunCommand_IncludesServeAndLambdaFlags(t *testing.T) {
	names := map[string]bool{}
	for _, flag := range runCmd.Flags {
		names[flag.Names()[0]] = true
	}

	for _, name := range []string{"host", "port", "h2c", "lambda-proxy-source"} {
		assert.True(t, names[name], name)
	}
}
