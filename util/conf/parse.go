package conf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/samplefn/util/cliflags"
)

type ParseOptions struct {
	// Cli is the cli.Context from urfave/cli
	Cli *cli.Context

	// CliMap is a map of cli flag names to config keys
	CliMap map[string]string

	// Defaults is a map of default values
	Defaults DefaultConfig

	// EnvPrefix is the prefix for env vars
	EnvPrefix string

	// FileName is the name of the JSON configuration file to load
	FileName string

	// Log is the logger to use
	Log *zap.Logger
}

// source is one layer of configuration. Optional layers only log a
// failure to load.
type source struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
	optional bool
}

// Parse loads defaults, the config file, env vars and cli flags into C,
// in that order, later sources overriding earlier ones.
func Parse[C any](opt ParseOptions) (C, error) {
	var config C

	log := opt.Log
	if log == nil {
		log = zap.NewNop()
	}

	k := koanf.New(".")

	known, err := leafKeys[C]()
	if err != nil {
		log.Error("error reading config keys", zap.Error(err))
		return config, err
	}

	for _, src := range sources(opt, known) {
		if err := k.Load(src.provider, src.parser); err != nil {
			if src.optional {
				log.Warn("skipping config source", zap.String("source", src.name), zap.Error(err))
				continue
			}

			log.Error("error loading config source", zap.String("source", src.name), zap.Error(err))
			return config, fmt.Errorf("load %s: %w", src.name, err)
		}
	}

	if err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		log.Error("error unmarshalling config", zap.Error(err))
		return config, err
	}

	return config, nil
}

// sources lists the layers in load order. Env vars are only loaded if
// they map to one of the known keys, so unrelated process variables
// cannot shadow a nested section.
func sources(opt ParseOptions, known map[string]struct{}) []source {
	var srcs []source

	if opt.Defaults != nil {
		srcs = append(srcs, source{
			name:     "defaults",
			provider: confmap.Provider(opt.Defaults, "."),
		})
	}

	if opt.FileName != "" {
		srcs = append(srcs, source{
			name:     opt.FileName,
			provider: file.Provider(opt.FileName),
			parser:   json.Parser(),
			optional: true,
		})
	}

	srcs = append(srcs, source{
		name: "env",
		provider: env.Provider(opt.EnvPrefix, ".", func(s string) string {
			key := transformEnv(s, opt.EnvPrefix)
			if _, ok := known[key]; !ok {
				// the env provider skips empty keys
				return ""
			}
			return key
		}),
	})

	if opt.Cli != nil {
		srcs = append(srcs, source{
			name: "flags",
			provider: cliflags.Provider(opt.Cli, ".", func(s string) string {
				return transformFlag(s, opt.CliMap)
			}),
		})
	}

	return srcs
}

// transformFlag maps a flag name to its config key, using names when it
// has an entry for the flag.
func transformFlag(s string, names map[string]string) string {
	if name, ok := names[s]; ok {
		return name
	}

	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}

// transformEnv maps FOO__BAR_BAZ to foo.bar_baz, dropping the prefix
// segment if one is configured.
func transformEnv(s, prefix string) string {
	normalized := strings.ReplaceAll(strings.ToLower(s), "__", ".")
	if prefix != "" {
		normalized = strings.TrimPrefix(normalized, strings.ToLower(prefix))
		normalized = strings.TrimLeft(normalized, "._")
	}

	return normalized
}
