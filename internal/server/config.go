package server

import (
	"net"
	"strconv"
	"time"
)

// HttpConfig configures the standalone http server.
type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`

	// H2c enables HTTP/2 over cleartext connections.
	H2c bool `conf:"h2c"`

	// ReadHeaderTimeout bounds reading request headers. Zero means
	// DefaultReadHeaderTimeout.
	ReadHeaderTimeout time.Duration `conf:"read_header_timeout"`
}

const DefaultReadHeaderTimeout = 10 * time.Second

// Addr returns the host:port address to listen on.
func (c HttpConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
