package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "notes.md", filepath.Join("sub", "c.hcl")} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "sub", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")
	require.Error(t, err)
}

func TestIsDirAndIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "libweldrt.a")
	require.NoError(t, os.WriteFile(file, []byte("!<arch>\n"), 0o644))
	missing := filepath.Join(dir, "missing")

	testCases := []struct {
		name     string
		check    func(StatFunc, string) (bool, error)
		path     string
		expected bool
	}{
		{name: "dir is dir", check: IsDir, path: dir, expected: true},
		{name: "dir with trailing separator is dir", check: IsDir, path: dir + string(filepath.Separator), expected: true},
		{name: "file with trailing separator is not dir", check: IsDir, path: file + string(filepath.Separator), expected: false},
		{name: "path through a file is not file", check: IsFile, path: filepath.Join(file, "libweldrt.a"), expected: false},
		{name: "file is not dir", check: IsDir, path: file, expected: false},
		{name: "missing is not dir", check: IsDir, path: missing, expected: false},
		{name: "file is file", check: IsFile, path: file, expected: true},
		{name: "dir is not file", check: IsFile, path: dir, expected: false},
		{name: "missing is not file", check: IsFile, path: missing, expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ok, err := tc.check(nil, tc.path)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}
