package parser

import (
	"strings"

	"sable/ast"
)

// Parser performs predictive recursive descent over a lazy token stream:
// one method per grammar rule, a single token of lookahead, no
// backtracking.
//
// Grammar:
//
//	Program             : StatementList
//	StatementList       : Statement { Statement }
//	Statement           : BlockStatement | ExpressionStatement
//	BlockStatement      : '{' [ StatementList ] '}'
//	ExpressionStatement : Expression ';'
//	Expression          : AdditiveExpression
//	AdditiveExpression  : MultiplicativeExpression { ('+'|'-') MultiplicativeExpression }
//	MultiplicativeExpr  : PrimaryExpression { ('*'|'/') PrimaryExpression }
//	PrimaryExpression   : '(' Expression ')' | Literal
//	Literal             : NUMBER | STRING
//
// Recursion depth follows the nesting depth of blocks and parentheses;
// callers feeding untrusted, deeply nested input should bound it themselves.
type Parser struct {
	filename  string
	scanner   *Scanner
	lookahead *Token
}

// noTerminator never matches a real token kind, so a statement list with
// this stop marker runs to the end of the input.
const noTerminator TokenType = -1

// ParseSource parses a whole source string into a Program. A fresh
// Scanner/Parser pair is built per call, so concurrent parses never share
// state.
func ParseSource(filename, source string) (*ast.Program, error) {
	p := &Parser{
		filename: filename,
		scanner:  NewScanner(source),
	}

	// Prime the first lookahead for predictive parsing.
	if err := p.next(); err != nil {
		return nil, err
	}

	return p.parseProgram()
}

// next refills the lookahead from the scanner; nil means the input is
// exhausted.
func (p *Parser) next() error {
	tok, err := p.scanner.NextToken()
	if err != nil {
		return err
	}
	p.lookahead = tok
	return nil
}

// eat consumes the current lookahead when it carries the expected kind and
// pulls the next token up behind it.
func (p *Parser) eat(tokenType TokenType) (*Token, error) {
	tok := p.lookahead
	if tok == nil {
		return nil, &SyntaxError{Expected: tokenType.String(), Position: p.endPosition()}
	}
	if tok.Type != tokenType {
		return nil, &SyntaxError{Found: tok.Lexeme, Expected: tokenType.String(), Position: tok.Position}
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return tok, nil
}

// endPosition is where the scanner stopped, used when the input ends where
// a token was required.
func (p *Parser) endPosition() Position {
	return Position{
		Line:   p.scanner.line,
		Column: p.scanner.column,
		Offset: p.scanner.current,
	}
}

func (p *Parser) makePos(tok *Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok *Token) ast.Position {
	line := tok.Position.Line
	column := tok.Position.Column + len(tok.Lexeme)
	// String lexemes may span lines; the end column counts from the last
	// newline, not the token start.
	if i := strings.LastIndexByte(tok.Lexeme, '\n'); i >= 0 {
		line += strings.Count(tok.Lexeme, "\n")
		column = len(tok.Lexeme) - i
	}
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     line,
		Column:   column,
	}
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	p.trace("Program")

	body, err := p.parseStatementList(noTerminator)
	if err != nil {
		return nil, err
	}

	return &ast.Program{
		Pos:    body[0].NodePos(),
		EndPos: body[len(body)-1].NodeEndPos(),
		Body:   body,
	}, nil
}

// parseStatementList parses one or more statements, stopping at end of
// input or when the lookahead's kind equals stop. Matching on the kind,
// not the lexeme, means a string literal spelled "}" can never terminate
// a block.
func (p *Parser) parseStatementList(stop TokenType) ([]ast.Stmt, error) {
	p.trace("StatementList")

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	list := []ast.Stmt{stmt}

	for p.lookahead != nil && p.lookahead.Type != stop {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}

	return list, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	p.trace("Statement")

	if p.lookahead != nil && p.lookahead.Type == LEFT_BRACE {
		return p.parseBlockStatement()
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseBlockStatement() (*ast.BlockStmt, error) {
	p.trace("BlockStatement")

	open, err := p.eat(LEFT_BRACE)
	if err != nil {
		return nil, err
	}

	// The statement list is optional: a block may be empty or hold only
	// comments, which the scanner never surfaces as tokens.
	var body []ast.Stmt
	if p.lookahead != nil && p.lookahead.Type != RIGHT_BRACE {
		if body, err = p.parseStatementList(RIGHT_BRACE); err != nil {
			return nil, err
		}
	}

	end, err := p.eat(RIGHT_BRACE)
	if err != nil {
		return nil, err
	}

	return &ast.BlockStmt{
		Pos:    p.makePos(open),
		EndPos: p.makeEndPos(end),
		Body:   body,
	}, nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExprStmt, error) {
	p.trace("ExpressionStatement")

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	semi, err := p.eat(SEMICOLON)
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: p.makeEndPos(semi),
		Expr:   expr,
	}, nil
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	p.trace("Expression")

	return p.parseAdditiveExpression()
}

// parseAdditiveExpression folds '+'/'-' chains left-associatively: seed
// with the first operand, then wrap the running left side once per
// operator/operand pair, so 2 - 2 - 2 parses as (2 - 2) - 2.
func (p *Parser) parseAdditiveExpression() (ast.Expr, error) {
	p.trace("AdditiveExpression")

	left, err := p.parseMultiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for p.lookahead != nil && p.lookahead.Type == ADDITIVE_OP {
		op, err := p.eat(ADDITIVE_OP)
		if err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicativeExpression()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Lexeme,
			Left:   left,
			Right:  right,
		}
	}

	return left, nil
}

// parseMultiplicativeExpression binds tighter than the additive tier and
// folds the same way.
func (p *Parser) parseMultiplicativeExpression() (ast.Expr, error) {
	p.trace("MultiplicativeExpression")

	left, err := p.parsePrimaryExpression()
	if err != nil {
		return nil, err
	}

	for p.lookahead != nil && p.lookahead.Type == MULTIPLICATIVE_OP {
		op, err := p.eat(MULTIPLICATIVE_OP)
		if err != nil {
			return nil, err
		}
		right, err := p.parsePrimaryExpression()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op.Lexeme,
			Left:   left,
			Right:  right,
		}
	}

	return left, nil
}

func (p *Parser) parsePrimaryExpression() (ast.Expr, error) {
	p.trace("PrimaryExpression")

	if p.lookahead != nil && p.lookahead.Type == LEFT_PAREN {
		if _, err := p.eat(LEFT_PAREN); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(RIGHT_PAREN); err != nil {
			return nil, err
		}
		// Grouping only steers precedence; the tree keeps the inner node.
		return expr, nil
	}

	return p.parseLiteral()
}

func (p *Parser) parseLiteral() (ast.Expr, error) {
	p.trace("Literal")

	if p.lookahead == nil {
		return nil, &SyntaxError{Expected: "a literal", Position: p.endPosition()}
	}

	switch p.lookahead.Type {
	case NUMBER:
		return p.parseNumberLiteral()
	case STRING:
		return p.parseStringLiteral()
	default:
		return nil, &GrammarDispatchError{Kind: p.lookahead.Type, Position: p.lookahead.Position}
	}
}

func (p *Parser) parseNumberLiteral() (*ast.NumberLiteral, error) {
	tok, err := p.eat(NUMBER)
	if err != nil {
		return nil, err
	}

	return &ast.NumberLiteral{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}, nil
}

func (p *Parser) parseStringLiteral() (*ast.StringLiteral, error) {
	tok, err := p.eat(STRING)
	if err != nil {
		return nil, err
	}

	return &ast.StringLiteral{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}, nil
}
