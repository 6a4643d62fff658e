package sable_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"sable"
	"sable/ast"
)

func init() {
	color.NoColor = true
}

func TestParse(t *testing.T) {
	program, err := sable.Parse(`"hello"; 42;`)
	assert.NoError(t, err)
	assert.Len(t, program.Body, 2)
	assert.Equal(t, "\"hello\";\n42;", program.String())
}

func TestParsePrecedence(t *testing.T) {
	program, err := sable.Parse("2 + 2 * 2;")
	assert.NoError(t, err)
	assert.Equal(t, "(2 + (2 * 2));", program.String())

	program, err = sable.Parse("(2 + 2) * 2;")
	assert.NoError(t, err)
	assert.Equal(t, "((2 + 2) * 2);", program.String())
}

func TestParseFailure(t *testing.T) {
	program, err := sable.Parse("42")
	assert.Error(t, err)
	assert.Nil(t, program, "No partial tree on failure")
}

func TestFormatError(t *testing.T) {
	source := "(2 + 2;"
	_, err := sable.Parse(source)
	assert.Error(t, err)

	formatted := sable.FormatError("main.sb", source, err)
	assert.Contains(t, formatted, "error[E0102]")
	assert.Contains(t, formatted, "main.sb:1:7")
	assert.Contains(t, formatted, "(2 + 2;")
}

func TestFormatErrorUnknownError(t *testing.T) {
	formatted := sable.FormatError("main.sb", "1;", assert.AnError)
	assert.Contains(t, formatted, assert.AnError.Error())
	assert.NotContains(t, formatted, "[E01")
}

func TestFreshStatePerCall(t *testing.T) {
	if _, err := sable.Parse("@"); err == nil {
		t.Fatal("expected a lexical error")
	}

	// A failed parse must not poison the next one.
	program, err := sable.Parse("1 * 1;")
	assert.NoError(t, err)

	expr, ok := program.Body[0].(*ast.ExprStmt).Expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, ast.BINARY_EXPR, expr.NodeType())
}
