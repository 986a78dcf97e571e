package diagnostics

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSources map[FileID][2]string

func (m mapSources) Source(id FileID) (string, string, bool) {
	f, ok := m[id]
	return f[0], f[1], ok
}

func TestSpan(t *testing.T) {
	s := NewSpan(4, 9, 1)

	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(9))
	assert.False(t, s.Contains(10))
	assert.True(t, s.Overlaps(NewSpan(8, 12, 1)))
	assert.False(t, s.Overlaps(NewSpan(8, 12, 2)))
	assert.False(t, s.IsEmpty())
	assert.True(t, EmptySpan().IsEmpty())
}

func TestDiagnosticsCollection(t *testing.T) {
	d := NewDiagnostics()
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.ToResult())

	d.PushError(NewError("first", EmptySpan()))
	other := FromError(NewError("second", EmptySpan()))
	d.Extend(other)

	require.Equal(t, 2, d.Len())
	assert.Equal(t, "first", d.Errors()[0].Message())
	assert.Equal(t, "second", d.Errors()[1].Message())

	err := d.ToResult()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema has 2 errors")
	assert.Contains(t, err.Error(), "second")

	var first Error
	require.True(t, errors.As(err, &first))
	assert.Equal(t, "first", first.Message())

	clone := d.Clone()
	clone.PushError(NewError("third", EmptySpan()))
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 3, clone.Len())
}

func TestDiagnosticsErrorsIsDetached(t *testing.T) {
	d := FromError(NewDuplicateDefinitionError("Foo", "enum", "message", NewSpan(20, 23, 2), NewSpan(8, 11, 1)))

	errs := d.Errors()
	errs[0] = NewError("replaced", EmptySpan())
	related := d.Errors()[0].Related()
	related[0].Message = "replaced"

	got := d.Errors()[0]
	assert.Contains(t, got.Message(), `"Foo"`)
	assert.Equal(t, `message "Foo" first defined here`, got.Related()[0].Message)
	empty := NewDiagnostics()
	assert.Nil(t, empty.Errors())
}

func TestDuplicateDefinitionError(t *testing.T) {
	err := NewDuplicateDefinitionError("Foo", "enum", "message", NewSpan(30, 33, 1), NewSpan(8, 11, 1))

	assert.Equal(t, `The enum "Foo" cannot be defined because a message with that name already exists.`, err.Message())
	require.Len(t, err.Related(), 1)
	assert.Equal(t, NewSpan(8, 11, 1), err.Related()[0].Span)

	extended := err.WithRelated(NewSpan(0, 1, 2), "also here")
	assert.Len(t, extended.Related(), 2)
	assert.Len(t, err.Related(), 1)
}

func TestPrettyPrint(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	src := "message Foo {\n  x Int;\n}\nenum Foo { A }\n"
	sources := mapSources{1: {"schema.dbuf", src}}
	second := strings.Index(src, "enum Foo") + len("enum ")
	first := strings.Index(src, "Foo")

	d := FromError(NewDuplicateDefinitionError(
		"Foo", "enum", "message",
		NewSpan(second, second+3, 1),
		NewSpan(first, first+3, 1),
	))
	out := d.ToPrettyString(sources)

	assert.Contains(t, out, `error: The enum "Foo" cannot be defined`)
	assert.Contains(t, out, "  --> schema.dbuf:4:6\n")
	assert.Contains(t, out, " 4 | enum Foo { A }\n")
	assert.Contains(t, out, "   |      ^^^\n")
	assert.Contains(t, out, `note: message "Foo" first defined here`)
	assert.Contains(t, out, "  --> schema.dbuf:1:9\n")
	assert.Contains(t, out, " 1 | message Foo {\n")
}

func TestPrettyPrintUnknownFile(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	d := FromError(NewSyntaxError("unexpected token", NewSpan(0, 1, 9)))
	out := d.ToPrettyString(mapSources{})

	assert.Equal(t, "error: Syntax error: unexpected token\n", out)
}
