package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertCommands checks the exact sequence of commands a FakeRunner saw.
func AssertCommands(t *testing.T, r *FakeRunner, want ...Call) {
	t.Helper()

	got := r.Calls()
	if len(want) == 0 {
		want = nil
	}
	if len(got) == 0 {
		got = nil
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected commands %v (-want +got):\n%s", got, diff)
	}
}
