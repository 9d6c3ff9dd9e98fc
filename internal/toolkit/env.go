package toolkit

import "os"

// Environment is the read-only view of process environment the resolver uses.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads the real process environment.
type OSEnvironment struct{}

// LookupEnv implements Environment.
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is an Environment backed by a fixed map.
type MapEnvironment map[string]string

// LookupEnv implements Environment.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
