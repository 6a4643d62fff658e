package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Program is the root of every successful parse: an ordered list of
// top-level statements, in source order.
// Example: "\"hello\"; 42;"
type Program struct {
	Pos    Position
	EndPos Position
	Body   []Stmt
}

// BlockStmt is a brace-delimited statement list. Blocks nest arbitrarily
// and may be empty.
// Example: "{ 42; { \"hello\"; } }"
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Body   []Stmt
}

// ExprStmt wraps a single expression terminated by ';'.
// Example: "2 + 2;"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// BinaryExpr is one binary operation. Op holds the exact operator text
// ("+", "-", "*", "/") as a leaf value, not a child node.
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// NumberLiteral keeps the matched digit string; the frontend never converts
// it to a machine integer.
// Example: "42"
type NumberLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

// StringLiteral keeps the raw lexeme including both quotes.
// Example: "\"hello\""
type StringLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}
