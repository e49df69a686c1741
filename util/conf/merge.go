package conf

// DefaultConfig is a flat map of config keys to default values.
type DefaultConfig map[string]any

// MergeDefaults merges maps into one, prefixing every key with ns and
// the key delimiter. An empty ns leaves the keys untouched.
func MergeDefaults[M ~map[string]V, V any](ns string, maps ...M) M {
	fullCap := 0
	for _, m := range maps {
		fullCap += len(m)
	}

	merged := make(M, fullCap)
	for _, m := range maps {
		for key, val := range m {
			if ns == "" {
				merged[key] = val
				continue
			}
			merged[ns+"."+key] = val
		}
	}

	return merged
}
