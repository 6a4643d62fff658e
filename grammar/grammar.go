package grammar

// The structs below restate the handwritten frontend's grammar
// declaratively; participle derives a parser from the capture tags. The
// conformance test in this package holds the two frontends to the same
// language.

type Program struct {
	Statements []*Statement `@@+`
}

type Statement struct {
	Block    *BlockStmt `  @@`
	ExprStmt *ExprStmt  `| @@`
}

type BlockStmt struct {
	Statements []*Statement `"{" @@* "}"`
}

type ExprStmt struct {
	Expr *Expr `@@ ";"`
}

// Expr is the additive tier; Term below it binds tighter.
type Expr struct {
	Left *Term    `@@`
	Ops  []*AddOp `@@*`
}

type AddOp struct {
	Operator string `@("+" | "-")`
	Right    *Term  `@@`
}

type Term struct {
	Left *Factor  `@@`
	Ops  []*MulOp `@@*`
}

type MulOp struct {
	Operator string  `@("*" | "/")`
	Right    *Factor `@@`
}

type Factor struct {
	Number *string `  @Number`
	Text   *string `| @String`
	Group  *Expr   `| "(" @@ ")"`
}
