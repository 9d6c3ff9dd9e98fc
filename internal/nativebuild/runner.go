package nativebuild

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/specialistvlad/weldlink/internal/ctxlog"
)

// Runner starts one external command in dir and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes. Both output streams default to
// os.Stderr: stdout of this process is reserved for link directives.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("build tool %q not found: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stderr
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	ctxlog.FromContext(ctx).Debug("Running command.", "dir", dir, "command", strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return cmd.Run()
}
