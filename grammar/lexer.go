package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SableLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments (block comments take the shortest match)
		{Name: "BlockComment", Pattern: `/\*[\s\S]*?\*/`},
		{Name: "Comment", Pattern: `//[^\n]*`},

		// Integer literals
		{Name: "Number", Pattern: `[0-9]+`},

		// String literals: no escapes, any run of non-quote characters
		{Name: "String", Pattern: `"[^"]*"`},

		// Operators
		{Name: "Operator", Pattern: `[-+*/]`},

		// Punctuation
		{Name: "Punctuation", Pattern: `[;{}()]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})
