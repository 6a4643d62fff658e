package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(SableLexer),
		participle.Elide("Whitespace", "Comment", "BlockComment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// ParseSource parses source text with the declarative grammar.
func ParseSource(sourceName string, source string) (*Program, error) {
	return parser.ParseString(sourceName, source)
}
