package parsing

import (
	"errors"
	"log/slog"

	"github.com/alecthomas/participle/v2"

	"github.com/satishbabariya/dbuf-go/dsl/core"
	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
	"github.com/satishbabariya/dbuf-go/dsl/ir"
	"github.com/satishbabariya/dbuf-go/internal/debug"
)

// Loader parses schema sources and transfers their definitions into a
// registry. Both the registry and the file table are supplied by the caller.
type Loader struct {
	ast    *ir.AST
	files  *core.Files
	logger *slog.Logger
}

// NewLoader creates a Loader that fills a and records sources in files.
func NewLoader(a *ir.AST, files *core.Files) *Loader {
	return &Loader{
		ast:    a,
		files:  files,
		logger: debug.With("component", "loader"),
	}
}

// Files returns the file table spans produced by this loader resolve against.
func (l *Loader) Files() *core.Files {
	return l.files
}

// Load parses file and adds its definitions in source order. A syntax error
// stops the file; a rejected definition does not, so every conflict in the
// file is reported.
func (l *Loader) Load(file core.SourceFile) diagnostics.Diagnostics {
	diags := diagnostics.NewDiagnostics()
	fileID := l.files.Add(file)

	parsed, err := ParseString(file.Path, file.Data)
	if err != nil {
		diags.PushError(syntaxError(err, fileID))
		l.logger.Debug("schema rejected", "file", file.Path, "error", err)
		return diags
	}

	conv := converter{fileID: fileID, intern: l.ast.Intern}
	var messages, enums int
	for _, item := range parsed.Items {
		switch {
		case item.Message != nil:
			m := conv.message(item.Message)
			if err = l.ast.AddMessage(m); err != nil {
				diags.PushError(registrationError(err, ir.KindMessage, m.Span))
				continue
			}
			messages++
		case item.Enum != nil:
			e := conv.enum(item.Enum)
			if err = l.ast.AddEnum(e); err != nil {
				diags.PushError(registrationError(err, ir.KindEnum, e.Span))
				continue
			}
			enums++
		}
	}

	l.logger.Debug("schema loaded",
		"file", file.Path,
		"messages", messages,
		"enums", enums,
		"errors", diags.Len(),
	)
	return diags
}

// LoadAll loads every file in order and returns the combined diagnostics.
func (l *Loader) LoadAll(files ...core.SourceFile) diagnostics.Diagnostics {
	diags := diagnostics.NewDiagnostics()
	for _, f := range files {
		diags.Extend(l.Load(f))
	}
	return diags
}

func syntaxError(err error, fileID diagnostics.FileID) diagnostics.Error {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return diagnostics.NewSyntaxError(perr.Message(), diagnostics.NewSpan(pos.Offset, pos.Offset, fileID))
	}
	return diagnostics.NewSyntaxError(err.Error(), diagnostics.NewSpan(0, 0, fileID))
}

func registrationError(err error, kind ir.DefinitionKind, span diagnostics.Span) diagnostics.Error {
	var dup *ir.DuplicateDefinitionError
	switch {
	case errors.As(err, &dup):
		return dup.Diagnostic()
	case errors.Is(err, ir.ErrEmptyName):
		return diagnostics.NewEmptyNameError(kind.String(), span)
	default:
		return diagnostics.NewError(err.Error(), span)
	}
}
