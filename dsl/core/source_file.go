// Package core provides the source file model shared by the dbuf loader and diagnostics.
package core

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"

	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
)

// SourceFile represents a source file with its content.
type SourceFile struct {
	Path string
	Data string
}

// NewSourceFile creates a new SourceFile.
func NewSourceFile(path, data string) SourceFile {
	return SourceFile{
		Path: path,
		Data: data,
	}
}

// Files assigns FileIDs to the sources of one compilation. IDs start at 1 so
// that diagnostics.FileIDZero never names a real file.
type Files struct {
	files []SourceFile
}

// NewFiles creates an empty file table.
func NewFiles() *Files {
	return &Files{}
}

// Add registers f and returns its FileID.
func (fs *Files) Add(f SourceFile) diagnostics.FileID {
	fs.files = append(fs.files, f)
	return diagnostics.FileID(len(fs.files))
}

// Get returns the file registered under id.
func (fs *Files) Get(id diagnostics.FileID) (SourceFile, bool) {
	if id == diagnostics.FileIDZero || int(id) > len(fs.files) {
		return SourceFile{}, false
	}
	return fs.files[id-1], true
}

// Len returns the number of registered files.
func (fs *Files) Len() int {
	return len(fs.files)
}

// Source implements diagnostics.SourceResolver.
func (fs *Files) Source(id diagnostics.FileID) (string, string, bool) {
	f, ok := fs.Get(id)
	if !ok {
		return "", "", false
	}
	return f.Path, f.Data, true
}

// ReadSourceFiles reads each path from fsys, keeping argument order.
func ReadSourceFiles(fsys afero.Fs, paths ...string) ([]SourceFile, error) {
	out := make([]SourceFile, 0, len(paths))
	for _, p := range paths {
		data, err := afero.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", p, err)
		}
		out = append(out, NewSourceFile(p, string(data)))
	}
	return out, nil
}

// GlobSourceFiles reads every file matching pattern, sorted by path so the
// registration order does not depend on directory listing order.
func GlobSourceFiles(fsys afero.Fs, pattern string) ([]SourceFile, error) {
	matches, err := afero.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return ReadSourceFiles(fsys, matches...)
}
