package conf

import (
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/structs"
)

// leafKeys returns the flattened "conf" keys of every leaf field of C.
func leafKeys[C any]() (map[string]struct{}, error) {
	var zero C

	mp, err := structs.Provider(zero, "conf").Read()
	if err != nil {
		return nil, err
	}

	flat, _ := maps.Flatten(mp, nil, ".")

	keys := make(map[string]struct{}, len(flat))
	for key := range flat {
		keys[key] = struct{}{}
	}

	return keys, nil
}
