package formatting

import (
	"github.com/satishbabariya/dbuf-go/dsl/core"
	"github.com/satishbabariya/dbuf-go/dsl/ir"
	"github.com/satishbabariya/dbuf-go/dsl/parsing"
)

// Reformat parses source and renders it back in canonical form.
// Returns an error if the source does not parse or declares a name twice.
func Reformat(source string, indentWidth int) (string, error) {
	registry := ir.NewAST()
	diags := parsing.NewLoader(registry, core.NewFiles()).Load(core.NewSourceFile("schema.dbuf", source))
	if err := diags.ToResult(); err != nil {
		return "", err
	}
	return NewRenderer(indentWidth).Render(registry.Freeze()), nil
}
