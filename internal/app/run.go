package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/weldlink/internal/config"
	"github.com/specialistvlad/weldlink/internal/ctxlog"
	"github.com/specialistvlad/weldlink/internal/linkdirective"
	"github.com/specialistvlad/weldlink/internal/nativebuild"
	"github.com/specialistvlad/weldlink/internal/toolkit"
)

// Plan is everything known about one invocation before the build step.
type Plan struct {
	Profile *config.Profile
	Paths   *toolkit.Paths
	Triple  linkdirective.Triple
}

// Resolve selects the profile, resolves paths and parses the target. It
// touches nothing but the environment and the file system metadata.
func (a *App) Resolve(ctx context.Context) (*Plan, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	profile, err := a.Profile()
	if err != nil {
		return nil, err
	}
	logger.Debug("Profile selected.", "profile", profile.Name)

	resolver := &toolkit.Resolver{Env: a.config.Env, Stat: a.stat}
	paths, err := resolver.Resolve(ctx, a.config.ProjectRoot, profile)
	if err != nil {
		return nil, err
	}

	triple := linkdirective.HostTriple()
	if a.config.Target != "" {
		if triple, err = linkdirective.ParseTriple(a.config.Target); err != nil {
			return nil, err
		}
	} else {
		logger.Debug("No target given, using host triple.", "target", triple.String())
	}

	return &Plan{Profile: profile, Paths: paths, Triple: triple}, nil
}

// Directives emits and validates the link directive set for a plan.
func (p *Plan) Directives() (linkdirective.Set, error) {
	aux := make(map[linkdirective.Platform][]string, len(p.Profile.Platforms))
	for name, libs := range p.Profile.Platforms {
		aux[linkdirective.Platform(name)] = libs
	}

	set := linkdirective.Emit(linkdirective.Inputs{
		Triple:     p.Triple,
		LibraryDir: p.Paths.LibraryDir,
		Libraries:  p.Profile.Libraries,
		Auxiliary:  aux,
		CxxRuntime: p.Profile.CxxRuntime,
		RuntimeLib: p.Profile.RuntimeLib,
		RuntimeDir: p.Paths.RuntimeDir,
	})
	if err := set.Validate(p.Profile.PrimaryLibrary(), p.Profile.CxxRuntime, p.Profile.RuntimeLib); err != nil {
		return nil, err
	}
	return set, nil
}

// Run executes the whole pipeline: resolve, clean and build the native
// runtime, then write the link directives. Nothing is written to the
// directive channel unless every step succeeded.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	plan, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	ctx = ctxlog.With(ctx, "profile", plan.Profile.Name, "target", plan.Triple.String())

	driver := nativebuild.New(a.runner, plan.Profile.BuildTool, plan.Paths.RuntimeDir, plan.Profile.RuntimeLib,
		nativebuild.WithStat(a.stat))
	if err := driver.Run(ctx); err != nil {
		return err
	}

	set, err := plan.Directives()
	if err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)
	for _, d := range set {
		logger.Debug("Link directive.", "directive", d.String())
	}
	if err := linkdirective.Encode(a.outW, set, a.config.Format); err != nil {
		return fmt.Errorf("failed to write link directives: %w", err)
	}

	logger.Info("Link directives emitted.", "count", len(set), "format", a.config.Format)
	return nil
}

// WritePlan resolves and writes the directives without building anything.
func (a *App) WritePlan(ctx context.Context) error {
	plan, err := a.Resolve(ctx)
	if err != nil {
		return err
	}
	set, err := plan.Directives()
	if err != nil {
		return err
	}
	return linkdirective.Encode(a.outW, set, a.config.Format)
}
