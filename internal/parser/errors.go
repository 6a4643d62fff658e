package parser

import "fmt"

// The frontend reports three kinds of failure, each fatal at the point of
// detection: no resynchronization, no multi-error collection, no partial
// tree. All three carry the position the parse stopped at.

// LexicalError reports input no scanning rule matches.
type LexicalError struct {
	Message  string
	Position Position
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// SyntaxError reports a lookahead token that does not fit the grammar.
// Found holds the offending lexeme, or is empty when the input ended where
// a token was required.
type SyntaxError struct {
	Found    string
	Expected string
	Position Position
}

func (e *SyntaxError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("syntax error at %d:%d: unexpected end of input, expected %s",
			e.Position.Line, e.Position.Column, e.Expected)
	}
	return fmt.Sprintf("syntax error at %d:%d: unexpected token %q, expected %s",
		e.Position.Line, e.Position.Column, e.Found, e.Expected)
}

// GrammarDispatchError flags the literal production being entered with a
// lookahead that is neither NUMBER nor STRING. Every valid dispatch path
// filters that case first, so this is an invariant violation of the grammar
// itself, kept as its own type so it is never mistaken for bad user input.
type GrammarDispatchError struct {
	Kind     TokenType
	Position Position
}

func (e *GrammarDispatchError) Error() string {
	return fmt.Sprintf("grammar dispatch error at %d:%d: unexpected literal production %s",
		e.Position.Line, e.Position.Column, e.Kind)
}
