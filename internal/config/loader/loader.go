// Package loader reads atlas configuration sources into generic maps.
//
// Two sources are supported: TOML files and ATLAS_-prefixed environment
// variables. Both produce nested map[string]any values keyed by section,
// which DeepMerge layers in precedence order.
package loader

import (
	"errors"
	"io/fs"
	"os"
)

// ErrIsDirectory is returned when a configuration path names a directory.
var ErrIsDirectory = errors.New("config path is a directory")

// Loader is the interface for configuration sources.
type Loader interface {
	// Load reads the source. It returns nil, nil when the source does not exist.
	Load() (map[string]any, error)
}

// FileSystem is the file access the loaders need.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem on the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// DeepMerge merges src into dst and returns dst.
// Nested maps merge key by key; any other src value replaces the dst value.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
			continue
		}
		dst[key] = srcVal
	}
	return dst
}

// Lookup returns the value at a dot-separated path such as "shell.prompt".
func Lookup(data map[string]any, path string) (any, bool) {
	current := data
	parts := splitPath(path)
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}
