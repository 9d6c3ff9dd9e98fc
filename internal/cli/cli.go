package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/specialistvlad/weldlink/internal/app"
	"github.com/specialistvlad/weldlink/internal/config"
	"github.com/specialistvlad/weldlink/internal/hcl"
	"github.com/specialistvlad/weldlink/internal/linkdirective"
	"github.com/specialistvlad/weldlink/internal/toolkit"
)

// Variables the host build system sets for build scripts.
const (
	EnvProjectRoot = "CARGO_MANIFEST_DIR"
	EnvTarget      = "TARGET"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
	}
	return nil
}

// CLI wires the command tree to its outputs and host environment.
type CLI struct {
	Out io.Writer // link directives and command output
	Err io.Writer // logs and child process output
	Env toolkit.Environment

	// Loader defaults to the HCL loader.
	Loader config.Loader
	// AppOptions are passed to every App the commands build.
	AppOptions []app.Option
}

type flags struct {
	profile      string
	profilePaths []string
	projectRoot  string
	target       string
	format       string
	logLevel     string
	logFormat    string
}

func (f *flags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.profile, "profile", "p", app.DefaultProfile, "Toolkit profile to build with.")
	fs.StringSliceVar(&f.profilePaths, "profiles-path", nil, "Extra profile .hcl file or directory (repeatable).")
	fs.StringVar(&f.projectRoot, "project-root", "", "Project root (default $"+EnvProjectRoot+").")
	fs.StringVar(&f.target, "target", "", "Target triple (default $"+EnvTarget+", then the host).")
	fs.StringVarP(&f.format, "format", "f", string(linkdirective.FormatCargo), fmt.Sprintf("Directive format: %v.", linkdirective.Formats))
	fs.StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
}

// Execute parses args and runs the selected command.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.newRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) newRootCommand() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "weldlink",
		Short: "Rebuild the native weld runtime and emit its link directives",
		Long: `weldlink resolves the compute toolkit for the selected profile, runs
"make clean" and "make" in <project-root>/weld_rt/cpp, and prints the linker
directives the host build needs on stdout. Logs go to stderr.

The project root and target default to $CARGO_MANIFEST_DIR and $TARGET.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(f)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context())
		},
	}
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	f.bind(root.PersistentFlags())

	root.AddCommand(
		c.newProfilesCommand(f),
		c.newResolveCommand(f),
		c.newPlanCommand(f),
	)
	return root
}

func (c *CLI) newProfilesCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available toolkit profiles",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(f)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, p := range a.Profiles() {
				source := "$" + p.ToolkitEnv
				if p.ToolkitEnv == "" {
					source = p.ToolkitFallback
				}
				rows = append(rows, []string{p.Name, source, strings.Join(p.Libraries, ","), p.Description})
			}

			table := tablewriter.NewWriter(c.Out)
			table.SetHeader([]string{"Profile", "Toolkit", "Libraries", "Description"})
			table.SetBorder(false)
			table.AppendBulk(rows)
			table.Render()
			return nil
		},
	}
}

func (c *CLI) newResolveCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve and print the toolkit and runtime paths without building",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(f)
			if err != nil {
				return err
			}
			plan, err := a.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Out, "profile=%s\n", plan.Profile.Name)
			fmt.Fprintf(c.Out, "target=%s\n", plan.Triple)
			fmt.Fprintf(c.Out, "project_root=%s\n", plan.Paths.ProjectRoot)
			fmt.Fprintf(c.Out, "toolkit_root=%s\n", plan.Paths.ToolkitRoot)
			fmt.Fprintf(c.Out, "library_dir=%s\n", plan.Paths.LibraryDir)
			fmt.Fprintf(c.Out, "runtime_dir=%s\n", plan.Paths.RuntimeDir)
			return nil
		},
	}
}

func (c *CLI) newPlanCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the link directives that a build would emit, without building",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp(f)
			if err != nil {
				return err
			}
			return a.WritePlan(cmd.Context())
		},
	}
}

// Config translates flags and host variables into a validated app.Config.
func (c *CLI) config(f *flags) (*app.Config, error) {
	env := c.Env
	if env == nil {
		env = toolkit.OSEnvironment{}
	}

	projectRoot := f.projectRoot
	if projectRoot == "" {
		projectRoot, _ = env.LookupEnv(EnvProjectRoot)
	}
	target := f.target
	if target == "" {
		target, _ = env.LookupEnv(EnvTarget)
	}
	slog.Debug("CLI inputs collected.", "project_root", projectRoot, "target", target, "profile", f.profile)

	format, err := linkdirective.ParseFormat(f.format)
	if err != nil {
		return nil, usageError(err)
	}

	cfg, err := app.NewConfig(app.Config{
		ProfileName:  f.profile,
		ProfilePaths: f.profilePaths,
		ProjectRoot:  projectRoot,
		Target:       target,
		Format:       format,
		LogLevel:     f.logLevel,
		LogFormat:    f.logFormat,
		Env:          env,
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

func (c *CLI) newApp(f *flags) (*app.App, error) {
	cfg, err := c.config(f)
	if err != nil {
		return nil, err
	}
	loader := c.Loader
	if loader == nil {
		loader = hcl.NewLoader()
	}
	return app.NewApp(c.Out, c.Err, cfg, loader, c.AppOptions...)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
