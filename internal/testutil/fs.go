package testutil

import (
	"io/fs"
	"path/filepath"
	"time"
)

// FakeFS answers Stat calls from fixed sets of paths so tests can use
// absolute paths like /opt/cuda without creating them.
type FakeFS struct {
	Dirs  map[string]bool
	Files map[string]bool
}

// NewFakeFS returns a FakeFS holding dirs; files can be added with AddFile.
func NewFakeFS(dirs ...string) *FakeFS {
	f := &FakeFS{Dirs: make(map[string]bool), Files: make(map[string]bool)}
	for _, d := range dirs {
		f.Dirs[filepath.Clean(d)] = true
	}
	return f
}

// AddFile registers a regular file.
func (f *FakeFS) AddFile(path string) *FakeFS {
	f.Files[filepath.Clean(path)] = true
	return f
}

// Stat matches os.Stat.
func (f *FakeFS) Stat(name string) (fs.FileInfo, error) {
	clean := filepath.Clean(name)
	switch {
	case f.Dirs[clean]:
		return fakeInfo{name: filepath.Base(clean), mode: fs.ModeDir | 0o755}, nil
	case f.Files[clean]:
		return fakeInfo{name: filepath.Base(clean), mode: 0o644}, nil
	default:
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
}

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }
