package errors

import (
	goerrors "errors"
	"fmt"

	"sable/ast"
	"sable/internal/parser"
)

// FromParseError maps a frontend failure onto a renderable CompilerError.
// Matching goes through errors.As so wrapped errors keep their code.
// Unknown error types degrade to a bare message with no code or location.
func FromParseError(filename string, err error) CompilerError {
	var lexErr *parser.LexicalError
	var synErr *parser.SyntaxError
	var dispatchErr *parser.GrammarDispatchError

	switch {
	case goerrors.As(err, &lexErr):
		return CompilerError{
			Level:    Error,
			Code:     ErrorLexical,
			Message:  lexErr.Message,
			Position: position(filename, lexErr.Position),
			Length:   1,
		}

	case goerrors.As(err, &synErr):
		message := fmt.Sprintf("unexpected token %q, expected %s", synErr.Found, synErr.Expected)
		length := len(synErr.Found)
		if synErr.Found == "" {
			message = fmt.Sprintf("unexpected end of input, expected %s", synErr.Expected)
			length = 1
		}
		return CompilerError{
			Level:    Error,
			Code:     ErrorSyntax,
			Message:  message,
			Position: position(filename, synErr.Position),
			Length:   length,
		}

	case goerrors.As(err, &dispatchErr):
		return CompilerError{
			Level:    Error,
			Code:     ErrorGrammarDispatch,
			Message:  fmt.Sprintf("unexpected literal production %s", dispatchErr.Kind),
			Position: position(filename, dispatchErr.Position),
			Length:   1,
			Notes:    []string{"a grammar dispatch entered the literal rule without checking the lookahead first"},
		}

	default:
		return CompilerError{Level: Error, Message: err.Error()}
	}
}

func position(filename string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
