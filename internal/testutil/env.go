package testutil

// EnvLookup returns an os.LookupEnv stand-in that reads from m.
func EnvLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}
