package config

import (
	"context"
)

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads the built-in profiles plus any profile files found under
	// paths and merges them into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
