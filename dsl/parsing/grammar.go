package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is the parse tree of one schema source.
type File struct {
	Pos   lexer.Position
	Items []*Item `@@*`
}

// Item is a top-level declaration.
type Item struct {
	Message *MessageDecl `  @@`
	Enum    *EnumDecl    `| @@`
}

// MessageDecl is `message Name (dep Type)* { field* }`.
type MessageDecl struct {
	Pos          lexer.Position
	Name         *Ident            `"message" @@`
	Dependencies []*DependencyDecl `( "(" @@ ")" )*`
	Fields       []*FieldDecl      `"{" @@* "}"`
}

// EnumDecl is `enum Name (dep Type)* { Variant, ... }`.
type EnumDecl struct {
	Pos          lexer.Position
	Name         *Ident            `"enum" @@`
	Dependencies []*DependencyDecl `( "(" @@ ")" )*`
	Variants     []*VariantDecl    `"{" ( @@ ","? )* "}"`
}

// VariantDecl is an enum constructor with an optional braced payload.
type VariantDecl struct {
	Pos    lexer.Position
	Name   *Ident       `@@`
	Fields []*FieldDecl `( "{" @@* "}" )?`
}

// DependencyDecl is a dependent parameter inside parentheses.
type DependencyDecl struct {
	Pos  lexer.Position
	Name *Ident   `@@`
	Type *TypeRef `@@`
}

// FieldDecl is `name Type;`.
type FieldDecl struct {
	Pos  lexer.Position
	Name *Ident   `@@`
	Type *TypeRef `@@ ";"`
}

// TypeRef is a type constructor followed by its arguments.
type TypeRef struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string `@Ident`
	Args   []*Arg `@@*`
}

// Arg is one argument of a TypeRef.
type Arg struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Nested *TypeRef `  "(" @@ ")"`
	Number *string  `| @Number`
	String *string  `| @String`
	Path   []string `| @Ident ( "." @Ident )*`
}

// Ident is a name together with its position.
type Ident struct {
	Pos  lexer.Position
	Name string `@Ident`
}

// GetName returns the identifier text, or "" for a nil identifier.
func (i *Ident) GetName() string {
	if i == nil {
		return ""
	}
	return i.Name
}
