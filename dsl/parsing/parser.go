// Package parsing reads dbuf schema sources with Participle and hands the
// resulting definitions to an ir.AST.
package parsing

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// parser is the Participle parser instance.
var parser = participle.MustBuild[File](
	participle.Lexer(DbufLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "MultiLineComment"),
	participle.Unquote("String"),
	participle.UseLookahead(4),
)

// Parse parses a dbuf schema from an io.Reader.
func Parse(filename string, r io.Reader) (*File, error) {
	return parser.Parse(filename, r)
}

// ParseString parses a dbuf schema from a string.
func ParseString(filename, input string) (*File, error) {
	return Parse(filename, strings.NewReader(input))
}

// MustParseString parses a dbuf schema from a string, panicking on error.
func MustParseString(filename, input string) *File {
	f, err := ParseString(filename, input)
	if err != nil {
		panic(err)
	}
	return f
}

// Grammar returns the EBNF of the schema language.
func Grammar() string {
	return parser.String()
}
