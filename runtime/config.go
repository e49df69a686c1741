package runtime

import (
	"time"

	"github.com/lambda-feedback/samplefn/util/conf"
)

type Config struct {
	// Timeout bounds a single invocation. Zero disables the limit.
	Timeout time.Duration `conf:"timeout"`
}

var DefaultConfig = conf.DefaultConfig{
	"timeout": "15s",
}
