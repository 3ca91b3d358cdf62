// Package embedded gives other packages access to the data files embedded by
// the main package.
//
// //go:embed can only reach files under the declaring package's directory, so
// the embed.FS lives in the root embed.go and is handed over with Init.
//
// Call Init before reading anything.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized is returned by every accessor before Init.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init sets the data file system. Paths inside it start with "data/".
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// normalize turns OS paths into embed.FS paths and checks the prefix.
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile reads an embedded file. The path must start with "data/".
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether an embedded file exists.
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// Glob matches embedded files, e.g. "data/levels/*.yaml".
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	pattern, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(dataFS, pattern)
}
