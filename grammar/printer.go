package grammar

import (
	"fmt"
	"strings"
)

// The printer renders a parse in the same fully-parenthesised shape the AST
// package's String methods produce, which is what the conformance test
// compares.

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, s := range p.Statements {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}

func (s *Statement) String() string {
	if s.Block != nil {
		return s.Block.String()
	}
	return s.ExprStmt.String()
}

func (b *BlockStmt) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString("  " + strings.ReplaceAll(s.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (e *Expr) String() string {
	out := e.Left.String()
	for _, op := range e.Ops {
		out = fmt.Sprintf("(%s %s %s)", out, op.Operator, op.Right.String())
	}
	return out
}

func (t *Term) String() string {
	out := t.Left.String()
	for _, op := range t.Ops {
		out = fmt.Sprintf("(%s %s %s)", out, op.Operator, op.Right.String())
	}
	return out
}

func (f *Factor) String() string {
	switch {
	case f.Number != nil:
		return *f.Number
	case f.Text != nil:
		return *f.Text
	default:
		return f.Group.String()
	}
}
