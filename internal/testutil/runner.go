package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// FakeRunner records commands instead of spawning processes.
type FakeRunner struct {
	mu    sync.Mutex
	calls []Call

	// ExitCodes maps the first argument of a call ("" for no arguments) to
	// the exit code that call should fail with.
	ExitCodes map[string]int
	// Artifact, when set, is the file name written into the call's directory
	// by a successful default-target call, emulating the real build.
	Artifact string
}

// NewFakeRunner returns a runner whose default-target call leaves artifact behind.
func NewFakeRunner(artifact string) *FakeRunner {
	return &FakeRunner{ExitCodes: make(map[string]int), Artifact: artifact}
}

// Run implements nativebuild.Runner.
func (r *FakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	r.mu.Unlock()

	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	if code, fail := r.ExitCodes[target]; fail {
		return &ExitStatus{Code: code}
	}
	if target == "" && r.Artifact != "" {
		return os.WriteFile(filepath.Join(dir, r.Artifact), []byte("!<arch>\n"), 0o644)
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *FakeRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
