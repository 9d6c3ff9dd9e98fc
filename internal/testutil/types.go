package testutil

import (
	"fmt"
	"strings"
)

// Call records one command started through a FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call the way it would be typed in a shell.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// ExitStatus is an error carrying a process exit code, standing in for
// *exec.ExitError in tests.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the stored exit code.
func (e *ExitStatus) ExitCode() int {
	return e.Code
}
