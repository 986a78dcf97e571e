// Package dsl provides the main API for compiling dbuf schemas into the
// definition registry read by later compiler phases.
package dsl

import (
	"github.com/spf13/afero"

	"github.com/satishbabariya/dbuf-go/dsl/core"
	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
	"github.com/satishbabariya/dbuf-go/dsl/ir"
	"github.com/satishbabariya/dbuf-go/dsl/parsing"
)

// Re-export key types for convenience
type (
	SourceFile  = core.SourceFile
	Diagnostics = diagnostics.Diagnostics
	Schema      = ir.Schema
)

// Compilation is the outcome of compiling a set of sources: the frozen
// registry, the files its spans point into and every problem found.
type Compilation struct {
	Schema      *ir.Schema
	Files       *core.Files
	Diagnostics diagnostics.Diagnostics
}

// Err returns nil when compilation found no problems.
func (c *Compilation) Err() error {
	return c.Diagnostics.ToResult()
}

// PrettyErrors renders every diagnostic with source snippets.
func (c *Compilation) PrettyErrors() string {
	return c.Diagnostics.ToPrettyString(c.Files)
}

// Compile loads files in order into a fresh registry and freezes it. The
// schema is returned even when there are diagnostics; rejected definitions
// are simply absent from it.
func Compile(files []SourceFile, opts ...ir.Option) *Compilation {
	registry := ir.NewAST(opts...)
	table := core.NewFiles()
	diags := parsing.NewLoader(registry, table).LoadAll(files...)

	return &Compilation{
		Schema:      registry.Freeze(),
		Files:       table,
		Diagnostics: diags,
	}
}

// CompileString compiles a single in-memory source.
func CompileString(path, source string, opts ...ir.Option) *Compilation {
	return Compile([]SourceFile{core.NewSourceFile(path, source)}, opts...)
}

// CompileFS reads paths from fsys and compiles them.
func CompileFS(fsys afero.Fs, paths []string, opts ...ir.Option) (*Compilation, error) {
	files, err := core.ReadSourceFiles(fsys, paths...)
	if err != nil {
		return nil, err
	}
	return Compile(files, opts...), nil
}

// NewSourceFile creates a new source file.
func NewSourceFile(path, data string) SourceFile {
	return core.NewSourceFile(path, data)
}
