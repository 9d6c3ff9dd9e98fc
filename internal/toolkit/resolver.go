package toolkit

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/weldlink/internal/config"
	"github.com/specialistvlad/weldlink/internal/ctxlog"
	"github.com/specialistvlad/weldlink/internal/fsutil"
)

const separator = string(os.PathSeparator)

// Paths are the resolved locations for one invocation.
type Paths struct {
	// ProjectRoot carries no trailing separator guarantee.
	ProjectRoot string
	// ToolkitRoot always ends in exactly one separator.
	ToolkitRoot string
	// LibraryDir is ToolkitRoot joined with the profile's library subdirectory.
	LibraryDir string
	// RuntimeDir is the native runtime build directory, with a trailing separator.
	RuntimeDir string
}

// Resolver turns host state plus a profile into Paths.
type Resolver struct {
	Env  Environment
	Stat fsutil.StatFunc
}

// NewResolver returns a resolver over env that checks the real file system.
func NewResolver(env Environment) *Resolver {
	return &Resolver{Env: env, Stat: os.Stat}
}

// NormalizeDir appends a path separator to raw unless it already ends in one.
// It is idempotent and leaves the empty string untouched.
func NormalizeDir(raw string) string {
	if raw == "" || strings.HasSuffix(raw, separator) {
		return raw
	}
	return raw + separator
}

// ToolkitRoot returns the normalized toolkit root for p without touching the
// file system.
func (r *Resolver) ToolkitRoot(p *config.Profile) (string, error) {
	if p.ToolkitEnv == "" {
		return NormalizeDir(p.ToolkitFallback), nil
	}
	raw, ok := r.Env.LookupEnv(p.ToolkitEnv)
	if !ok || raw == "" {
		return "", &ConfigError{Source: p.ToolkitEnv, Err: ErrToolkitUnset}
	}
	return NormalizeDir(raw), nil
}

// Resolve validates projectRoot and computes every path derived from the
// toolkit root. The toolkit root must exist as a directory.
func (r *Resolver) Resolve(ctx context.Context, projectRoot string, p *config.Profile) (*Paths, error) {
	logger := ctxlog.FromContext(ctx)

	if projectRoot == "" {
		return nil, &ConfigError{Source: "project root", Err: ErrProjectRootUnset}
	}
	if !filepath.IsAbs(projectRoot) {
		return nil, &ConfigError{Source: "project root", Value: projectRoot, Err: ErrProjectRootRelative}
	}

	toolkitRoot, err := r.ToolkitRoot(p)
	if err != nil {
		return nil, err
	}

	isDir, err := fsutil.IsDir(r.Stat, toolkitRoot)
	if err != nil {
		return nil, &ConfigError{Source: "toolkit root", Value: toolkitRoot, Err: err}
	}
	if !isDir {
		return nil, &ConfigError{Source: "toolkit root", Value: toolkitRoot, Err: ErrToolkitNotDir}
	}

	paths := &Paths{
		ProjectRoot: projectRoot,
		ToolkitRoot: toolkitRoot,
		LibraryDir:  toolkitRoot + strings.TrimPrefix(filepath.FromSlash(p.LibrarySubdir), separator),
		RuntimeDir:  NormalizeDir(filepath.Join(projectRoot, filepath.FromSlash(p.RuntimeDir))),
	}
	logger.Debug("Paths resolved.",
		"project_root", paths.ProjectRoot,
		"toolkit_root", paths.ToolkitRoot,
		"library_dir", paths.LibraryDir,
		"runtime_dir", paths.RuntimeDir,
	)
	return paths, nil
}
