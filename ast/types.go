package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./ast`
//
//go:generate stringer -type=NodeType
const (
	PROGRAM NodeType = iota

	// Statements
	BLOCK_STMT
	EXPR_STMT

	// Expressions
	BINARY_EXPR
	NUMBER_LITERAL
	STRING_LITERAL
)
