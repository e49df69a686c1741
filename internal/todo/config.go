package todo

import (
	"time"

	"github.com/lambda-feedback/samplefn/util/conf"
)

type Config struct {
	// BaseURL is the root of the todo API, without a trailing slash.
	BaseURL string `conf:"base_url"`

	// Timeout bounds a single request. Zero disables the limit.
	Timeout time.Duration `conf:"timeout"`

	// MaxBodySize limits the response body read into memory. Zero or
	// less means DefaultMaxBodySize.
	MaxBodySize int64 `conf:"max_body_size"`
}

// DefaultMaxBodySize matches the limit on invocation request bodies.
const DefaultMaxBodySize = 20 << 20

var DefaultConfig = conf.DefaultConfig{
	"base_url": "https://jsonplaceholder.typicode.com",
	"timeout":  "10s",
}
