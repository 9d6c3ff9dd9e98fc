package nativebuild_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/weldlink/internal/nativebuild"
	"github.com/specialistvlad/weldlink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_CleanThenBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := testutil.NewFakeRunner("libweldrt.a")
	d := nativebuild.New(runner, "make", dir, "weldrt")
	require.Equal(t, nativebuild.Idle, d.State())

	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, nativebuild.Done, d.State())
	assert.Equal(t, filepath.Join(dir, "libweldrt.a"), d.ArtifactPath())
	testutil.AssertCommands(t, runner,
		testutil.Call{Dir: dir, Name: "make", Args: []string{"clean"}},
		testutil.Call{Dir: dir, Name: "make"},
	)
}

func TestDriver_CleanFailureNeverBuilds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := testutil.NewFakeRunner("libweldrt.a")
	runner.ExitCodes["clean"] = 2
	d := nativebuild.New(runner, "make", dir, "weldrt")

	err := d.Run(context.Background())
	require.Error(t, err)

	var buildErr *nativebuild.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, nativebuild.Cleaning, buildErr.Step)
	assert.Equal(t, 2, buildErr.ExitCode())
	assert.Equal(t, nativebuild.Cleaning, d.State())

	testutil.AssertCommands(t, runner,
		testutil.Call{Dir: dir, Name: "make", Args: []string{"clean"}},
	)
	_, statErr := os.Stat(d.ArtifactPath())
	assert.True(t, errors.Is(statErr, os.ErrNotExist))

	require.ErrorIs(t, d.Build(context.Background()), nativebuild.ErrOutOfOrder, "no retry after a failed clean")
	assert.Len(t, runner.Calls(), 1)
}

func TestDriver_BuildFailureIsFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	runner := testutil.NewFakeRunner("libweldrt.a")
	runner.ExitCodes[""] = 1
	d := nativebuild.New(runner, "make", dir, "weldrt")

	err := d.Run(context.Background())

	var buildErr *nativebuild.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, nativebuild.Building, buildErr.Step)
	assert.Equal(t, 1, buildErr.ExitCode())
	assert.Equal(t, nativebuild.Building, d.State())
	assert.Len(t, runner.Calls(), 2)
}

func TestDriver_MissingArtifact(t *testing.T) {
	t.Parallel()

	runner := testutil.NewFakeRunner("")
	d := nativebuild.New(runner, "make", t.TempDir(), "weldrt")

	err := d.Run(context.Background())
	require.ErrorIs(t, err, nativebuild.ErrArtifactMissing)
	assert.NotEqual(t, nativebuild.Done, d.State())
}

func TestDriver_OutOfOrder(t *testing.T) {
	t.Parallel()

	runner := testutil.NewFakeRunner("libweldrt.a")
	d := nativebuild.New(runner, "make", t.TempDir(), "weldrt")

	require.ErrorIs(t, d.Build(context.Background()), nativebuild.ErrOutOfOrder)
	assert.Empty(t, runner.Calls(), "a build without a clean must not start the tool")

	require.NoError(t, d.Run(context.Background()))
	require.ErrorIs(t, d.Clean(context.Background()), nativebuild.ErrOutOfOrder, "a finished driver is not re-entered")
}

func TestBuildError_NoExitCode(t *testing.T) {
	t.Parallel()

	err := &nativebuild.BuildError{Step: nativebuild.Cleaning, Dir: "/x", Err: errors.New("boom")}
	assert.Equal(t, -1, err.ExitCode())
	assert.Contains(t, err.Error(), "cleaning step failed in /x")
}

func TestExecRunner_MissingTool(t *testing.T) {
	t.Parallel()

	r := &nativebuild.ExecRunner{}
	err := r.Run(context.Background(), t.TempDir(), "weldlink-no-such-build-tool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", nativebuild.Idle.String())
	assert.Equal(t, "cleaning", nativebuild.Cleaning.String())
	assert.Equal(t, "building", nativebuild.Building.String())
	assert.Equal(t, "done", nativebuild.Done.String())
	assert.Equal(t, "unknown", nativebuild.State(42).String())
}
