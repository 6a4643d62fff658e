package ast

type Stmt interface {
	Node
	isStmt()
}

func (*BlockStmt) isStmt() {}

func (*ExprStmt) isStmt() {}
