package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sable/grammar"
	"sable/internal/parser"
)

func TestParseLiteralStatements(t *testing.T) {
	program, err := grammar.ParseSource("test.sb", `"hello"; 42;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assert.Len(t, program.Statements, 2)

	first := program.Statements[0].ExprStmt
	assert.NotNil(t, first)
	assert.NotNil(t, first.Expr.Left.Left.Text)
	assert.Equal(t, `"hello"`, *first.Expr.Left.Left.Text)

	second := program.Statements[1].ExprStmt
	assert.NotNil(t, second)
	assert.NotNil(t, second.Expr.Left.Left.Number)
	assert.Equal(t, "42", *second.Expr.Left.Left.Number)
}

func TestParsePrecedenceTiers(t *testing.T) {
	program, err := grammar.ParseSource("test.sb", "2 + 2 * 2;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expr := program.Statements[0].ExprStmt.Expr
	assert.Len(t, expr.Ops, 1, "One additive operation")
	assert.Equal(t, "+", expr.Ops[0].Operator)
	assert.Len(t, expr.Ops[0].Right.Ops, 1, "The multiplication hangs off the additive right operand")
	assert.Equal(t, "*", expr.Ops[0].Right.Ops[0].Operator)
}

func TestParseBlocks(t *testing.T) {
	program, err := grammar.ParseSource("test.sb", "{ 42; { \"hello\"; } }")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	block := program.Statements[0].Block
	assert.NotNil(t, block)
	assert.Len(t, block.Statements, 2)
	assert.NotNil(t, block.Statements[1].Block, "Blocks nest")
}

func TestParseEmptyBlock(t *testing.T) {
	program, err := grammar.ParseSource("test.sb", "{ }")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	block := program.Statements[0].Block
	assert.NotNil(t, block)
	assert.Empty(t, block.Statements)
}

func TestRejectsMissingSemicolon(t *testing.T) {
	_, err := grammar.ParseSource("test.sb", "42")
	assert.Error(t, err)
}

// The declarative grammar and the handwritten frontend must accept the same
// language and produce the same tree shape.
func TestConformanceWithHandwrittenParser(t *testing.T) {
	fixtures := []string{
		`42;`,
		`"hello";`,
		`"hello"; 42;`,
		`2 + 2 * 2;`,
		`(2 + 2) * 2;`,
		`2 - 2 - 2;`,
		`1 + 2 * 3 - 4 / 2;`,
		`{ }`,
		`{ 42; { "hello"; } }`,
		"// lead\n/* block */ \"hello\"; 42;",
		`((1));`,
	}

	for _, source := range fixtures {
		declarative, err := grammar.ParseSource("fixture.sb", source)
		if err != nil {
			t.Errorf("declarative parse of %q failed: %v", source, err)
			continue
		}

		handwritten, err := parser.ParseSource("fixture.sb", source)
		if err != nil {
			t.Errorf("handwritten parse of %q failed: %v", source, err)
			continue
		}

		assert.Equal(t, handwritten.String(), declarative.String(),
			"both frontends must agree on %q", source)
	}
}
