package ast

type Expr interface {
	Node
	isExpr()
}

func (*BinaryExpr) isExpr() {}

func (*NumberLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}
