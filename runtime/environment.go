package runtime

import (
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment is a read-only snapshot of the variables visible to a
// function. It is taken once at startup and shared by all invocations.
type Environment struct {
	vars map[string]string
}

// NewEnvironment creates an environment holding a copy of vars.
func NewEnvironment(vars map[string]string) Environment {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}

	return Environment{vars: copied}
}

const envDelim = "\x00"

// LoadEnvironment snapshots the process environment. If envFile is not
// empty, the dotenv file is loaded first and process variables take
// precedence over its entries.
func LoadEnvironment(envFile string) (Environment, error) {
	// env var names never contain NUL, so no key is ever split
	k := koanf.New(envDelim)

	if envFile != "" {
		if err := k.Load(file.Provider(envFile), dotenv.Parser()); err != nil {
			return Environment{}, err
		}
	}

	if err := k.Load(env.Provider("", envDelim, nil), nil); err != nil {
		return Environment{}, err
	}

	vars := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		vars[key] = k.String(key)
	}

	return Environment{vars: vars}, nil
}

// Lookup returns the value of key and whether it is set.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Get returns the value of key, or nil if it is not set.
func (e Environment) Get(key string) *string {
	v, ok := e.vars[key]
	if !ok {
		return nil
	}

	return &v
}
