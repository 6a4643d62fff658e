package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Body))
	for _, stmt := range p.Body {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, "\n")
}

func (b *BlockStmt) String() string {
	if len(b.Body) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Body {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

// Binary expressions render fully parenthesised so associativity and
// precedence are visible in test output.
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (n *NumberLiteral) String() string {
	return n.Value
}

func (s *StringLiteral) String() string {
	return s.Value
}
