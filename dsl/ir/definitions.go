// Package ir holds the intermediate representation of a dbuf schema: the
// message and enum definitions, the registry that owns them and the string
// interner shared by every compiler phase.
package ir

import (
	"strconv"
	"strings"

	"github.com/satishbabariya/dbuf-go/dsl/diagnostics"
)

// Message is a named composite type. Dependencies are the dependent
// parameters in parentheses after the name; Fields are the body in source order.
type Message struct {
	Name         string
	Dependencies []Field
	Fields       []Field
	Span         diagnostics.Span
}

// Enum is a named tagged union.
type Enum struct {
	Name         string
	Dependencies []Field
	Variants     []Variant
	Span         diagnostics.Span
}

// Variant is one constructor of an Enum with an optional payload.
type Variant struct {
	Name   string
	Fields []Field
	Span   diagnostics.Span
}

// Field is a named, typed slot of a message, a variant or a dependency list.
type Field struct {
	Name string
	Type TypeExpr
	Span diagnostics.Span
}

// TypeExpr is a type constructor applied to arguments, e.g. `Array Int n`.
type TypeExpr struct {
	Name string
	Args []Expr
	Span diagnostics.Span
}

// Expr is a type argument. Exactly one of Path, Number, Text or Type is set.
// Text holds the unquoted contents of a string literal.
type Expr struct {
	Path   []string
	Number string
	Text   *string
	Type   *TypeExpr
	Span   diagnostics.Span
}

// Clone returns a deep copy of m.
func (m Message) Clone() Message {
	m.Dependencies = cloneFields(m.Dependencies)
	m.Fields = cloneFields(m.Fields)
	return m
}

// Field returns the body field with the given name.
func (m Message) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy of e.
func (e Enum) Clone() Enum {
	e.Dependencies = cloneFields(e.Dependencies)
	if e.Variants != nil {
		variants := make([]Variant, len(e.Variants))
		for i, v := range e.Variants {
			variants[i] = v.Clone()
		}
		e.Variants = variants
	}
	return e
}

// Variant returns the variant with the given name.
func (e Enum) Variant(name string) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Clone returns a deep copy of v.
func (v Variant) Clone() Variant {
	v.Fields = cloneFields(v.Fields)
	return v
}

// Clone returns a deep copy of f.
func (f Field) Clone() Field {
	f.Type = f.Type.Clone()
	return f
}

// Clone returns a deep copy of t.
func (t TypeExpr) Clone() TypeExpr {
	if t.Args != nil {
		args := make([]Expr, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.Clone()
		}
		t.Args = args
	}
	return t
}

// String renders the type the way it is written in source.
func (t TypeExpr) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	var b strings.Builder
	b.WriteString(t.Name)
	for _, a := range t.Args {
		b.WriteByte(' ')
		if a.Type != nil {
			b.WriteByte('(')
			b.WriteString(a.String())
			b.WriteByte(')')
			continue
		}
		b.WriteString(a.String())
	}
	return b.String()
}

// Clone returns a deep copy of e.
func (e Expr) Clone() Expr {
	if e.Path != nil {
		path := make([]string, len(e.Path))
		copy(path, e.Path)
		e.Path = path
	}
	if e.Text != nil {
		s := *e.Text
		e.Text = &s
	}
	if e.Type != nil {
		t := e.Type.Clone()
		e.Type = &t
	}
	return e
}

// String renders the argument the way it is written in source.
func (e Expr) String() string {
	switch {
	case e.Type != nil:
		return e.Type.String()
	case e.Text != nil:
		return strconv.Quote(*e.Text)
	case e.Number != "":
		return e.Number
	default:
		return strings.Join(e.Path, ".")
	}
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = f.Clone()
	}
	return out
}
