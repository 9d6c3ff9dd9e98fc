// Package fsutil provides file system helpers shared by the profile loader
// and the path resolver.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths in
// lexical order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// StatFunc matches os.Stat so callers can substitute a fake file system.
type StatFunc func(name string) (fs.FileInfo, error)

// IsDir reports whether path exists and is a directory. A missing path is
// not an error, and neither is a path that runs through a regular file
// ("file/" fails with ENOTDIR).
func IsDir(stat StatFunc, path string) (bool, error) {
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(path)
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(stat StatFunc, path string) (bool, error) {
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(path)
	if err != nil {
		if notFound(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func notFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
