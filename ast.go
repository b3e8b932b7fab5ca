package natrix

// Node constructors allocate their struct from the parser's arena
// (spec.md §4.1/§3: "AST nodes (arena-owned, freed collectively)").

func newIntLit(a *Arena, span Span) *IntLit {
	n := allocNode[IntLit](a)
	n.span = span
	return n
}

func newStrLit(a *Arena, span Span) *StrLit {
	n := allocNode[StrLit](a)
	n.span = span
	return n
}

func newListLit(a *Arena, span Span, elems []Expr) *ListLit {
	n := allocNode[ListLit](a)
	n.span, n.Elems = span, elems
	return n
}

func newNameExpr(a *Arena, span Span) *NameExpr {
	n := allocNode[NameExpr](a)
	n.span = span
	return n
}

func newBinaryExpr(a *Arena, span Span, op BinaryOp, left, right Expr) *BinaryExpr {
	n := allocNode[BinaryExpr](a)
	n.span, n.Op, n.Left, n.Right = span, op, left, right
	return n
}

func newSubscriptExpr(a *Arena, span Span, recv, index Expr) *SubscriptExpr {
	n := allocNode[SubscriptExpr](a)
	n.span, n.Recv, n.Index = span, recv, index
	return n
}

func newExprStmt(a *Arena, span Span, x Expr) *ExprStmt {
	n := allocNode[ExprStmt](a)
	n.span, n.X = span, x
	return n
}

func newAssignStmt(a *Arena, span Span, lhs, rhs Expr) *AssignStmt {
	n := allocNode[AssignStmt](a)
	n.span, n.LHS, n.RHS = span, lhs, rhs
	return n
}

func newWhileStmt(a *Arena, span Span, cond Expr, body []Stmt) *WhileStmt {
	n := allocNode[WhileStmt](a)
	n.span, n.Cond, n.Body = span, cond, body
	return n
}

func newIfStmt(a *Arena, span Span, cond Expr, then, els []Stmt) *IfStmt {
	n := allocNode[IfStmt](a)
	n.span, n.Cond, n.Then, n.Else = span, cond, then, els
	return n
}

func newPassStmt(a *Arena, span Span) *PassStmt {
	n := allocNode[PassStmt](a)
	n.span = span
	return n
}

func newPrintStmt(a *Arena, span Span, x Expr) *PrintStmt {
	n := allocNode[PrintStmt](a)
	n.span, n.X = span, x
	return n
}

// BinaryOp enumerates the binary operators natrix's grammar produces.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// Expr is the tagged-union replacement spec.md §9 allows: a Go
// interface over the expression variants, dispatched by type switch
// in the evaluator instead of a v-table (the AST is consumed once, by
// a single pass, so a second dispatch table buys nothing here).
type Expr interface {
	Span() Span
}

// Stmt is the statement counterpart of Expr.
type Stmt interface {
	Span() Span
}

// IntLit is an integer literal; its span covers the source slice of
// its digits, parsed lazily at evaluation time (spec.md §4.8: overflow is
// an evaluation-time fault, not a parse-time one).
type IntLit struct {
	span Span
}

func (n *IntLit) Span() Span { return n.span }

// StrLit is a string literal; its span includes the surrounding
// quotes, per spec.md §3.
type StrLit struct {
	span Span
}

func (n *StrLit) Span() Span { return n.span }

// ListLit is a list literal. Elems is the Go-idiomatic stand-in for
// spec.md's "linked list of element expressions sharing Expr.Next" —
// an ordered slice carries the same sequencing invariant without
// requiring every Expr variant to embed a next pointer.
type ListLit struct {
	span  Span
	Elems []Expr
}

func (n *ListLit) Span() Span { return n.span }

// NameExpr is a bare identifier reference.
type NameExpr struct {
	span Span
}

func (n *NameExpr) Span() Span { return n.span }

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	span        Span
	Op          BinaryOp
	Left, Right Expr
}

func (n *BinaryExpr) Span() Span { return n.span }

// SubscriptExpr is `Recv[Index]`. Its span's End is the position just
// past the closing `]`.
type SubscriptExpr struct {
	span       Span
	Recv       Expr
	Index      Expr
}

func (n *SubscriptExpr) Span() Span { return n.span }

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	span Span
	X    Expr
}

func (n *ExprStmt) Span() Span { return n.span }

// AssignStmt is `LHS = RHS`. The parser guarantees LHS is a *NameExpr
// or *SubscriptExpr before this node is built (spec.md §4.4).
type AssignStmt struct {
	span     Span
	LHS, RHS Expr
}

func (n *AssignStmt) Span() Span { return n.span }

// WhileStmt is `while Cond: Body`.
type WhileStmt struct {
	span Span
	Cond Expr
	Body []Stmt
}

func (n *WhileStmt) Span() Span { return n.span }

// IfStmt is `if Cond: Then else: Else`. Else is never nil: the parser
// supplies a synthetic single-PassStmt block when the source has no
// else/elif clause, so the evaluator always has a branch to run
// (spec.md §4.8).
type IfStmt struct {
	span       Span
	Cond       Expr
	Then, Else []Stmt
}

func (n *IfStmt) Span() Span { return n.span }

// PassStmt is a no-op.
type PassStmt struct {
	span Span
}

func (n *PassStmt) Span() Span { return n.span }

// PrintStmt is `print(X)`.
type PrintStmt struct {
	span Span
	X    Expr
}

func (n *PrintStmt) Span() Span { return n.span }
