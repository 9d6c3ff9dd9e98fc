package nativebuild

import (
	"context"
	"path/filepath"

	"github.com/specialistvlad/weldlink/internal/ctxlog"
	"github.com/specialistvlad/weldlink/internal/fsutil"
)

const cleanTarget = "clean"

// Driver runs the clean and build steps against one runtime directory.
type Driver struct {
	runner  Runner
	tool    string
	dir     string
	library string
	stat    fsutil.StatFunc
	state   State
	failed  bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithStat replaces the file system check used to verify the artifact.
func WithStat(stat fsutil.StatFunc) Option {
	return func(d *Driver) { d.stat = stat }
}

// New returns an idle driver that builds library with tool in dir.
func New(runner Runner, tool, dir, library string, opts ...Option) *Driver {
	d := &Driver{
		runner:  runner,
		tool:    tool,
		dir:     dir,
		library: library,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current step. After a failure it is the step that failed.
func (d *Driver) State() State {
	return d.state
}

// ArtifactPath is where the build is expected to leave the static library.
func (d *Driver) ArtifactPath() string {
	return filepath.Join(d.dir, "lib"+d.library+".a")
}

// Clean discards previously compiled artifacts.
func (d *Driver) Clean(ctx context.Context) error {
	if d.state != Idle || d.failed {
		return &BuildError{Step: Cleaning, Dir: d.dir, Err: ErrOutOfOrder}
	}
	d.state = Cleaning
	ctxlog.FromContext(ctx).Info("Cleaning native runtime.", "dir", d.dir, "tool", d.tool)

	if err := d.runner.Run(ctx, d.dir, d.tool, cleanTarget); err != nil {
		d.failed = true
		return &BuildError{Step: Cleaning, Dir: d.dir, Err: err}
	}
	return nil
}

// Build runs the tool's default target and checks that the artifact exists.
// It may only follow a successful Clean.
func (d *Driver) Build(ctx context.Context) error {
	if d.state != Cleaning || d.failed {
		return &BuildError{Step: Building, Dir: d.dir, Err: ErrOutOfOrder}
	}
	d.state = Building
	ctxlog.FromContext(ctx).Info("Building native runtime.", "dir", d.dir, "tool", d.tool)

	if err := d.runner.Run(ctx, d.dir, d.tool); err != nil {
		d.failed = true
		return &BuildError{Step: Building, Dir: d.dir, Err: err}
	}

	ok, err := fsutil.IsFile(d.stat, d.ArtifactPath())
	if err != nil {
		d.failed = true
		return &BuildError{Step: Building, Dir: d.dir, Err: err}
	}
	if !ok {
		d.failed = true
		return &BuildError{Step: Building, Dir: d.dir, Err: ErrArtifactMissing}
	}

	d.state = Done
	ctxlog.FromContext(ctx).Debug("Native runtime built.", "artifact", d.ArtifactPath())
	return nil
}

// Run cleans then builds. Build is never attempted when Clean fails.
func (d *Driver) Run(ctx context.Context) error {
	if err := d.Clean(ctx); err != nil {
		return err
	}
	return d.Build(ctx)
}
