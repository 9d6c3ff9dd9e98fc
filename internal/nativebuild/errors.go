package nativebuild

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfOrder      = errors.New("build step called out of order")
	ErrArtifactMissing = errors.New("native runtime artifact was not produced")
)

// ExitCoder is implemented by errors that carry a child process exit status,
// such as *exec.ExitError.
type ExitCoder interface {
	ExitCode() int
}

// BuildError reports a failed build step.
type BuildError struct {
	Step State
	Dir  string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("native build %s step failed in %s: %v", e.Step, e.Dir, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ExitCode returns the child's exit status, or -1 when the step failed
// without one (for example the tool could not be started).
func (e *BuildError) ExitCode() int {
	var coder ExitCoder
	if errors.As(e.Err, &coder) {
		return coder.ExitCode()
	}
	return -1
}
