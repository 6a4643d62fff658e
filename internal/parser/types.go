package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Literals
	NUMBER TokenType = iota
	STRING

	// Separators
	SEMICOLON

	// Brackets
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_PAREN
	RIGHT_PAREN

	// Operators, one kind per precedence tier: ADDITIVE_OP covers '+' and
	// '-', MULTIPLICATIVE_OP covers '*' and '/'. The lexeme tells them apart.
	ADDITIVE_OP
	MULTIPLICATIVE_OP
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
