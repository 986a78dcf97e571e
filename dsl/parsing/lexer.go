package parsing

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// DbufLexer defines the token types of the dbuf schema language.
var DbufLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "MultiLineComment", Pattern: `/\*(?:[^*]|\*[^/])*\*/`},

	// Literals
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},

	// Identifiers and the `message` / `enum` keywords
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},

	// Punctuation
	{Name: "Punct", Pattern: `[{}();,.]`},

	// Whitespace and newlines
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
