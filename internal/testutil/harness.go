package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Project is a throwaway project tree with a vendored runtime directory and
// a fake toolkit installation next to it.
type Project struct {
	Root        string
	RuntimeDir  string
	ToolkitRoot string
}

// NewProject creates <tmp>/proj/weld_rt/cpp and <tmp>/cuda/lib64.
func NewProject(t *testing.T) *Project {
	t.Helper()

	tmpDir := t.TempDir()
	p := &Project{
		Root:        filepath.Join(tmpDir, "proj"),
		ToolkitRoot: filepath.Join(tmpDir, "cuda"),
	}
	p.RuntimeDir = filepath.Join(p.Root, "weld_rt", "cpp")

	require.NoError(t, os.MkdirAll(p.RuntimeDir, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(p.ToolkitRoot, "lib64"), 0o755))
	return p
}

// WriteFiles writes files relative to dir, creating parent directories.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
}

// DumpLogs prints captured logs when WELDLINK_TEST_LOGS=true.
func DumpLogs(t *testing.T, logs *SafeBuffer) {
	t.Helper()
	t.Cleanup(func() {
		if os.Getenv("WELDLINK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
}
