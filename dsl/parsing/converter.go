package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
	"github.com/satishbabariya/dbuf-go/dsl/ir"
)

// converter turns parse-tree nodes into ir definitions whose spans point into
// one file. Every definition, member and type constructor name is interned in
// the order it is converted.
type converter struct {
	fileID diagnostics.FileID
	intern func(string) ir.SymbolID
}

func (c converter) name(s string) string {
	if c.intern != nil {
		c.intern(s)
	}
	return s
}

func (c converter) message(d *MessageDecl) ir.Message {
	return ir.Message{
		Name:         c.name(d.Name.GetName()),
		Dependencies: c.dependencies(d.Dependencies),
		Fields:       c.fields(d.Fields),
		Span:         c.identSpan(d.Name),
	}
}

func (c converter) enum(d *EnumDecl) ir.Enum {
	name := c.name(d.Name.GetName())
	deps := c.dependencies(d.Dependencies)
	var variants []ir.Variant
	if len(d.Variants) > 0 {
		variants = make([]ir.Variant, len(d.Variants))
		for i, v := range d.Variants {
			variants[i] = ir.Variant{
				Name:   c.name(v.Name.GetName()),
				Fields: c.fields(v.Fields),
				Span:   c.identSpan(v.Name),
			}
		}
	}
	return ir.Enum{
		Name:         name,
		Dependencies: deps,
		Variants:     variants,
		Span:         c.identSpan(d.Name),
	}
}

func (c converter) dependencies(deps []*DependencyDecl) []ir.Field {
	if len(deps) == 0 {
		return nil
	}
	out := make([]ir.Field, len(deps))
	for i, d := range deps {
		out[i] = ir.Field{
			Name: c.name(d.Name.GetName()),
			Type: c.typeRef(d.Type),
			Span: c.identSpan(d.Name),
		}
	}
	return out
}

func (c converter) fields(fields []*FieldDecl) []ir.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ir.Field, len(fields))
	for i, f := range fields {
		out[i] = ir.Field{
			Name: c.name(f.Name.GetName()),
			Type: c.typeRef(f.Type),
			Span: c.identSpan(f.Name),
		}
	}
	return out
}

func (c converter) typeRef(t *TypeRef) ir.TypeExpr {
	if t == nil {
		return ir.TypeExpr{}
	}
	name := c.name(t.Name)
	var args []ir.Expr
	if len(t.Args) > 0 {
		args = make([]ir.Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.arg(a)
		}
	}
	return ir.TypeExpr{
		Name: name,
		Args: args,
		Span: c.span(t.Pos, t.EndPos),
	}
}

func (c converter) arg(a *Arg) ir.Expr {
	e := ir.Expr{Span: c.span(a.Pos, a.EndPos)}
	switch {
	case a.Nested != nil:
		nested := c.typeRef(a.Nested)
		e.Type = &nested
	case a.Number != nil:
		e.Number = *a.Number
	case a.String != nil:
		s := *a.String
		e.Text = &s
	default:
		e.Path = make([]string, len(a.Path))
		for i, seg := range a.Path {
			e.Path[i] = c.name(seg)
		}
	}
	return e
}

func (c converter) identSpan(id *Ident) diagnostics.Span {
	if id == nil {
		return diagnostics.NewSpan(0, 0, c.fileID)
	}
	return diagnostics.NewSpan(id.Pos.Offset, id.Pos.Offset+len(id.Name), c.fileID)
}

func (c converter) span(start, end lexer.Position) diagnostics.Span {
	if end.Offset < start.Offset {
		end = start
	}
	return diagnostics.NewSpan(start.Offset, end.Offset, c.fileID)
}
