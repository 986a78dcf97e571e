package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/dbuf-go/dsl/core"
	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
	"github.com/satishbabariya/dbuf-go/dsl/ir"
)

const pointAndColor = `message Point {
  x Int;
  y Int;
}

enum Color { Red, Green, Blue }
`

func TestLoader_Load(t *testing.T) {
	a := ir.NewAST()
	l := NewLoader(a, core.NewFiles())

	diags := l.Load(core.NewSourceFile("shapes.dbuf", pointAndColor))
	require.False(t, diags.HasErrors())

	point, ok := a.Message("Point")
	require.True(t, ok)
	require.Len(t, point.Fields, 2)
	assert.Equal(t, "y", point.Fields[1].Name)
	assert.Equal(t, ir.TypeExpr{Name: "Int", Span: point.Fields[1].Type.Span}, point.Fields[1].Type)
	assert.Equal(t, diagnostics.NewSpan(8, 13, 1), point.Span)

	color, ok := a.Enum("Color")
	require.True(t, ok)
	require.Len(t, color.Variants, 3)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, []string{
		color.Variants[0].Name, color.Variants[1].Name, color.Variants[2].Name,
	})

	_, ok = a.Message("Missing")
	assert.False(t, ok)
	assert.Equal(t, 1, l.Files().Len())
}

func TestLoader_DuplicatesAcrossFiles(t *testing.T) {
	a := ir.NewAST()
	files := core.NewFiles()
	l := NewLoader(a, files)

	diags := l.LoadAll(
		core.NewSourceFile("a.dbuf", "message Foo { x Int; }\n"),
		core.NewSourceFile("b.dbuf", "enum Foo { A }\nmessage Bar { y Int; }\nmessage Foo { z Int; }\n"),
	)

	require.Equal(t, 2, diags.Len())
	for _, e := range diags.Errors() {
		assert.Equal(t, diagnostics.FileID(2), e.Span().FileID)
		require.Len(t, e.Related(), 1)
		assert.Equal(t, diagnostics.NewSpan(8, 11, 1), e.Related()[0].Span)
	}

	// The first definition is kept and loading continued past the conflicts.
	foo, ok := a.Message("Foo")
	require.True(t, ok)
	assert.Equal(t, "x", foo.Fields[0].Name)
	_, ok = a.Message("Bar")
	assert.True(t, ok)
	_, ok = a.Enum("Foo")
	assert.False(t, ok)

	registered := a.Diagnostics()
	assert.Equal(t, 2, registered.Len())
}

func TestLoader_SyntaxError(t *testing.T) {
	a := ir.NewAST()
	l := NewLoader(a, core.NewFiles())

	diags := l.Load(core.NewSourceFile("bad.dbuf", "message A {\n  x Int;\n  y Array Int\n}\n"))
	require.Equal(t, 1, diags.Len())

	e := diags.Errors()[0]
	assert.Contains(t, e.Message(), "Syntax error")
	assert.Equal(t, diagnostics.FileID(1), e.Span().FileID)
	assert.Greater(t, e.Span().Start, 0)
	assert.Equal(t, 0, a.Len())
}

func TestLoader_DependentDefinitions(t *testing.T) {
	a := ir.NewAST()
	l := NewLoader(a, core.NewFiles())

	diags := l.Load(core.NewSourceFile("vec.dbuf", `
message Vec (n UInt) {
  items Array Int n;
  tag Tagged "v" (Box Int);
}
enum Shape {
  Circle { radius Float; },
  Empty
}
`))
	require.False(t, diags.HasErrors())

	vec, ok := a.Message("Vec")
	require.True(t, ok)
	require.Len(t, vec.Dependencies, 1)
	assert.Equal(t, "n", vec.Dependencies[0].Name)
	assert.Equal(t, "Array Int n", vec.Fields[0].Type.String())
	assert.Equal(t, `Tagged "v" (Box Int)`, vec.Fields[1].Type.String())

	shape, ok := a.Enum("Shape")
	require.True(t, ok)
	circle, ok := shape.Variant("Circle")
	require.True(t, ok)
	assert.Equal(t, "Float", circle.Fields[0].Type.Name)
	empty, ok := shape.Variant("Empty")
	require.True(t, ok)
	assert.Nil(t, empty.Fields)
}

func TestLoader_InternsNamesInSourceOrder(t *testing.T) {
	a := ir.NewAST()
	l := NewLoader(a, core.NewFiles())

	diags := l.Load(core.NewSourceFile("shapes.dbuf", pointAndColor))
	require.False(t, diags.HasErrors())

	s := a.Freeze()
	assert.Equal(t, []string{"Point", "x", "Int", "y", "Color", "Red", "Green", "Blue"}, s.Symbols())

	id, ok := s.Symbol("x")
	require.True(t, ok)
	assert.Equal(t, ir.SymbolID(1), id)
	name, ok := s.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, "x", name)
}

func TestLoader_InternsDependentNames(t *testing.T) {
	a := ir.NewAST()
	l := NewLoader(a, core.NewFiles())

	diags := l.Load(core.NewSourceFile("vec.dbuf", "message Vec (n UInt) {\n  items Array (Box Int) n;\n}\n"))
	require.False(t, diags.HasErrors())

	assert.Equal(t, []string{"Vec", "n", "UInt", "items", "Array", "Box", "Int"}, a.Interner().Strings())
}

func TestRegistrationErrorKeepsSpan(t *testing.T) {
	span := diagnostics.NewSpan(8, 8, 3)

	got := registrationError(ir.ErrEmptyName, ir.KindEnum, span)
	assert.Equal(t, diagnostics.NewEmptyNameError("enum", span), got)

	got = registrationError(ir.ErrFrozen, ir.KindMessage, span)
	assert.Equal(t, span, got.Span())
	assert.Equal(t, ir.ErrFrozen.Error(), got.Message())
}
