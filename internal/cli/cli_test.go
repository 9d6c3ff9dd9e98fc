package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/weldlink/internal/app"
	"github.com/specialistvlad/weldlink/internal/linkdirective"
	"github.com/specialistvlad/weldlink/internal/testutil"
	"github.com/specialistvlad/weldlink/internal/toolkit"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		flags      flags
		env        toolkit.MapEnvironment
		want       app.Config
		expectErr  bool
		expectCode int
	}{
		{
			name:  "host variables fill project root and target",
			flags: flags{profile: "cuda", format: "cargo"},
			env:   toolkit.MapEnvironment{EnvProjectRoot: "/src/weld", EnvTarget: "x86_64-apple-darwin"},
			want: app.Config{
				ProfileName: "cuda",
				ProjectRoot: "/src/weld",
				Target:      "x86_64-apple-darwin",
				Format:      linkdirective.FormatCargo,
				LogFormat:   "text",
				LogLevel:    "info",
			},
		},
		{
			name: "flags win over host variables",
			flags: flags{
				profile:      "cuda8-nvvm",
				profilePaths: []string{"./profiles"},
				projectRoot:  "/flag/root",
				target:       "aarch64-unknown-linux-gnu",
				format:       "ldflags",
				logLevel:     "DEBUG",
				logFormat:    "json",
			},
			env: toolkit.MapEnvironment{EnvProjectRoot: "/src/weld", EnvTarget: "x86_64-apple-darwin"},
			want: app.Config{
				ProfileName:  "cuda8-nvvm",
				ProfilePaths: []string{"./profiles"},
				ProjectRoot:  "/flag/root",
				Target:       "aarch64-unknown-linux-gnu",
				Format:       linkdirective.FormatLDFlags,
				LogFormat:    "json",
				LogLevel:     "debug",
			},
		},
		{
			name:       "unknown format",
			flags:      flags{format: "yaml"},
			env:        toolkit.MapEnvironment{},
			expectErr:  true,
			expectCode: 2,
		},
		{
			name:       "malformed target",
			flags:      flags{format: "cargo", target: "linux"},
			env:        toolkit.MapEnvironment{},
			expectErr:  true,
			expectCode: 2,
		},
		{
			name:       "invalid log level",
			flags:      flags{format: "cargo", logLevel: "verbose"},
			env:        toolkit.MapEnvironment{},
			expectErr:  true,
			expectCode: 2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			c := &CLI{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}, Env: tc.env}
			f := tc.flags

			// --- Act ---
			cfg, err := c.config(&f)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				assert.Equal(t, tc.expectCode, ExitCode(err))
				return
			}
			require.NoError(t, err)

			// The environment is carried through untouched.
			assert.Equal(t, tc.env, cfg.Env)
			cfg.Env = nil
			if diff := cmp.Diff(tc.want, *cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "unknown command", args: []string{"deploy"}},
		{name: "extra argument to subcommand", args: []string{"plan", "now"}},
		{name: "bad format", args: []string{"plan", "--format", "xml"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			c := &CLI{Out: out, Err: &bytes.Buffer{}, Env: toolkit.MapEnvironment{}}

			err := c.Execute(context.Background(), tc.args)

			require.Error(t, err)
			assert.Equal(t, 2, ExitCode(err), "error: %v", err)
			assert.Empty(t, out.String())
		})
	}
}

func TestExecute_Profiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	c := &CLI{Out: out, Err: &bytes.Buffer{}, Env: toolkit.MapEnvironment{}}

	// --- Act ---
	err := c.Execute(context.Background(), []string{"profiles"})

	// --- Assert ---
	require.NoError(t, err)
	table := out.String()
	assert.Contains(t, table, "cuda8-nvvm")
	assert.Contains(t, table, "$CUDA_PATH")
	assert.Contains(t, table, "/usr/local/cuda-8.0")
}

func TestExecute_Resolve(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	project := testutil.NewProject(t)
	out := &bytes.Buffer{}
	c := &CLI{
		Out: out,
		Err: &bytes.Buffer{},
		Env: toolkit.MapEnvironment{
			EnvProjectRoot: project.Root,
			EnvTarget:      "x86_64-unknown-linux-gnu",
			"CUDA_PATH":    project.ToolkitRoot,
		},
	}

	// --- Act ---
	err := c.Execute(context.Background(), []string{"resolve"})

	// --- Assert ---
	require.NoError(t, err)
	sep := string(filepath.Separator)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"profile=cuda",
		"target=x86_64-unknown-linux-gnu",
		"project_root=" + project.Root,
		"toolkit_root=" + project.ToolkitRoot + sep,
		"library_dir=" + project.ToolkitRoot + sep + "lib64",
		"runtime_dir=" + project.RuntimeDir + sep,
	}, lines)
}

func TestExecute_Build(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	project := testutil.NewProject(t)
	runner := testutil.NewFakeRunner("libweldrt.a")
	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testutil.DumpLogs(t, logs)

	c := &CLI{
		Out: out,
		Err: logs,
		Env: toolkit.MapEnvironment{
			EnvProjectRoot: project.Root,
			"CUDA_PATH":    project.ToolkitRoot,
		},
		AppOptions: []app.Option{app.WithRunner(runner)},
	}

	// --- Act ---
	err := c.Execute(context.Background(), []string{"--target", "x86_64-unknown-linux-gnu", "--format", "ldflags"})

	// --- Assert ---
	require.NoError(t, err)
	sep := string(filepath.Separator)
	runtimeDir := project.RuntimeDir + sep
	testutil.AssertCommands(t, runner,
		testutil.Call{Dir: runtimeDir, Name: "make", Args: []string{"clean"}},
		testutil.Call{Dir: runtimeDir, Name: "make"},
	)
	assert.Equal(t,
		"-L"+project.ToolkitRoot+sep+"lib64 -L"+project.RuntimeDir+" -lweldrt -lcuda -lstdc++\n",
		out.String())
	assert.Contains(t, logs.String(), "Link directives emitted.")
}
