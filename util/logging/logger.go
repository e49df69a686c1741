package logging

import (
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// FormatProduction writes JSON lines.
	FormatProduction = "production"

	// FormatDevelopment writes human readable console lines.
	FormatDevelopment = "development"
)

type Options struct {
	// App is added to every entry as the "app" field.
	App string

	// Level is a zap level name. Unknown or empty levels mean info.
	Level string

	// Format is FormatProduction or FormatDevelopment. Empty means
	// production.
	Format string
}

// New builds the process logger.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if IsDevelopment(opts.Format) {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Level = ParseLevel(opts.Level)

	if opts.App != "" {
		cfg.InitialFields = map[string]any{"app": opts.App}
	}

	return cfg.Build()
}

// IsDevelopment reports whether format selects console output.
func IsDevelopment(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatDevelopment, "dev", "console":
		return true
	}

	return false
}

// ParseLevel parses lvl, falling back to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

// DecorateLogger names the logger of every consumer inside an fx module
// and attaches fields to it.
func DecorateLogger(name string, fields ...zap.Field) fx.Option {
	return fx.Decorate(func(log *zap.Logger) *zap.Logger {
		return log.Named(name).With(fields...)
	})
}
