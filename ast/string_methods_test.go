package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(value string) *NumberLiteral {
	return &NumberLiteral{Value: value}
}

func str(value string) *StringLiteral {
	return &StringLiteral{Value: value}
}

func TestLiteralStrings(t *testing.T) {
	assert.Equal(t, "42", num("42").String())
	assert.Equal(t, `"hello"`, str(`"hello"`).String(), "String literals render with their quotes")
}

func TestBinaryExprString(t *testing.T) {
	product := &BinaryExpr{Op: "*", Left: num("2"), Right: num("3")}
	assert.Equal(t, "(2 * 3)", product.String())

	sum := &BinaryExpr{Op: "+", Left: num("1"), Right: product}
	assert.Equal(t, "(1 + (2 * 3))", sum.String(), "Nesting renders with explicit parentheses")
}

func TestProgramString(t *testing.T) {
	program := &Program{Body: []Stmt{
		&ExprStmt{Expr: str(`"hello"`)},
		&ExprStmt{Expr: num("42")},
	}}

	assert.Equal(t, "\"hello\";\n42;", program.String())
}

func TestBlockStmtString(t *testing.T) {
	empty := &BlockStmt{}
	assert.Equal(t, "{ }", empty.String())

	nested := &BlockStmt{Body: []Stmt{
		&ExprStmt{Expr: num("42")},
		&BlockStmt{Body: []Stmt{&ExprStmt{Expr: str(`"hello"`)}}},
	}}
	assert.Equal(t, "{\n  42;\n  {\n    \"hello\";\n  }\n}", nested.String())
}

func TestNodeTypes(t *testing.T) {
	assert.Equal(t, PROGRAM, (&Program{}).NodeType())
	assert.Equal(t, BLOCK_STMT, (&BlockStmt{}).NodeType())
	assert.Equal(t, EXPR_STMT, (&ExprStmt{}).NodeType())
	assert.Equal(t, BINARY_EXPR, (&BinaryExpr{}).NodeType())
	assert.Equal(t, NUMBER_LITERAL, num("1").NodeType())
	assert.Equal(t, STRING_LITERAL, str(`"s"`).NodeType())

	assert.Equal(t, "BINARY_EXPR", BINARY_EXPR.String())
}

func TestNodePositionsAccessors(t *testing.T) {
	pos := Position{Filename: "test.sb", Line: 1, Column: 1}
	end := Position{Filename: "test.sb", Line: 1, Column: 3, Offset: 2}

	lit := &NumberLiteral{Pos: pos, EndPos: end, Value: "42"}
	assert.Equal(t, pos, lit.NodePos())
	assert.Equal(t, end, lit.NodeEndPos())
}
