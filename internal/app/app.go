package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/weldlink/internal/config"
	"github.com/specialistvlad/weldlink/internal/ctxlog"
	"github.com/specialistvlad/weldlink/internal/fsutil"
	"github.com/specialistvlad/weldlink/internal/nativebuild"
)

// App encapsulates the orchestrator's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	runner nativebuild.Runner
	stat   fsutil.StatFunc
}

// Option customises an App; tests use it to swap out process and file
// system access.
type Option func(*App)

// WithRunner replaces the child process runner used by the build driver.
func WithRunner(r nativebuild.Runner) Option {
	return func(a *App) { a.runner = r }
}

// WithStat replaces the file system check used by the resolver and driver.
func WithStat(stat fsutil.StatFunc) Option {
	return func(a *App) { a.stat = stat }
}

// NewApp builds an App. Link directives go to outW, logs and child process
// output to logW. Profiles are loaded eagerly so a bad profile file fails
// before anything else happens.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ProfilePaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	logger.Debug("Profiles loaded.", "profiles", model.Names())

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
		runner: &nativebuild.ExecRunner{Stdout: logW, Stderr: logW},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Profiles returns every loaded profile, sorted by name.
func (a *App) Profiles() []*config.Profile {
	names := a.model.Names()
	out := make([]*config.Profile, 0, len(names))
	for _, name := range names {
		out = append(out, a.model.Profiles[name])
	}
	return out
}

// Profile returns the profile selected by the configuration.
func (a *App) Profile() (*config.Profile, error) {
	return a.model.Profile(a.config.ProfileName)
}
