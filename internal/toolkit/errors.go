package toolkit

import (
	"errors"
	"fmt"
)

var (
	ErrProjectRootUnset    = errors.New("project root is not set")
	ErrProjectRootRelative = errors.New("project root must be an absolute path")
	ErrToolkitUnset        = errors.New("toolkit root variable is not set")
	ErrToolkitNotDir       = errors.New("toolkit root is not a directory")
)

// ConfigError reports a host configuration problem found during resolution.
type ConfigError struct {
	// Source is the variable or profile field the bad value came from.
	Source string
	Value  string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s=%q: %v", e.Source, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
