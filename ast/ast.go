// Package ast defines the query and expression trees consumed by the
// compiler. Trees are built by the typed query layer, handed to compile
// once, and never mutated afterward.
package ast

// Expr is the interface for all scalar expressions.
type Expr interface {
	exprNode() // marker method to identify expression types
}

// ColumnExpr references a column by its already-resolved name.
// The name is emitted verbatim; sanitization happens upstream.
type ColumnExpr struct {
	Name string
}

func (ColumnExpr) exprNode() {}

// LiteralExpr wraps a literal value.
type LiteralExpr struct {
	Lit Lit
}

func (LiteralExpr) exprNode() {}

// Lit is the interface for literal values.
type Lit interface {
	litNode() // marker method to identify literal types
}

// NullLit is the SQL NULL literal. It renders as the NULL keyword and
// never binds a parameter.
type NullLit struct{}

func (NullLit) litNode() {}

// WrappedLit is a nullable-wrapper literal. It renders exactly as its
// inner literal; the wrapper itself adds no placeholder.
type WrappedLit struct {
	Inner Lit
}

func (WrappedLit) litNode() {}

// ValueLit is a concrete scalar literal. Each occurrence binds exactly
// one parameter.
type ValueLit struct {
	Value any
}

func (ValueLit) litNode() {}

// UnaryExpr represents a unary operation (op applied to one operand).
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (UnaryExpr) exprNode() {}

// UnaryOp represents unary operators.
type UnaryOp string

const (
	OpAbs    UnaryOp = "ABS"
	OpSign   UnaryOp = "SIGN"
	OpNegate UnaryOp = "-"
	OpNot    UnaryOp = "NOT"
)

// BinaryExpr represents a binary operation (left op right).
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (BinaryExpr) exprNode() {}

// BinaryOp represents binary operators.
type BinaryOp string

const (
	OpGt    BinaryOp = ">"
	OpLt    BinaryOp = "<"
	OpGe    BinaryOp = ">="
	OpLe    BinaryOp = "<="
	OpEq    BinaryOp = "="
	OpNe    BinaryOp = "!="
	OpIs    BinaryOp = "IS"
	OpIsNot BinaryOp = "IS NOT"
	OpAnd   BinaryOp = "AND"
	OpOr    BinaryOp = "OR"
	OpAdd   BinaryOp = "+"
	OpSub   BinaryOp = "-"
	OpMul   BinaryOp = "*"
	OpDiv   BinaryOp = "/"
	OpLike  BinaryOp = "LIKE"
)

// FuncExpr represents a named function call with one or two arguments.
// Arity is enforced by the Func1/Func2 constructors, not here.
type FuncExpr struct {
	Name string
	Args []Expr
}

func (FuncExpr) exprNode() {}

// AggregateExpr represents an aggregate function applied to one operand.
// It renders identically to a one-argument FuncExpr; keeping it a
// distinct variant lets the typed layer restrict where aggregates appear.
type AggregateExpr struct {
	Name    string
	Operand Expr
}

func (AggregateExpr) exprNode() {}

// CastExpr marks a type-level cast. It is invisible in rendered SQL and
// exists so the typed layer can retag an expression's result type.
type CastExpr struct {
	Operand Expr
}

func (CastExpr) exprNode() {}

// SelectExpr is a column or expression in a SELECT clause.
// An empty Alias means the expression is emitted bare.
type SelectExpr struct {
	Expr  Expr
	Alias string
}

// Source is the interface for the FROM clause of a query.
type Source interface {
	sourceNode() // marker method to identify source types
}

// TableSource names a base table.
type TableSource struct {
	Name string
}

func (TableSource) sourceNode() {}

// QuerySource is a list of sub-queries joined as a cartesian product.
// An empty list means the query has no FROM clause at all.
type QuerySource struct {
	Queries []*Query
}

func (QuerySource) sourceNode() {}

// Dir is an ORDER BY direction.
type Dir string

const (
	Asc  Dir = "ASC"
	Desc Dir = "DESC"
)

// OrderExpr represents ORDER BY expr ASC|DESC.
type OrderExpr struct {
	Expr Expr
	Dir  Dir
}

// Limit represents LIMIT offset,count. Both values are non-negative and
// are rendered inline, never bound as parameters.
type Limit struct {
	Offset int
	Count  int
}

// Query is the root of a relational AST.
type Query struct {
	Cols      []SelectExpr // non-empty
	Source    Source
	Restricts []Expr // conjoined with AND
	GroupBy   []Expr
	OrderBy   []OrderExpr
	Limit     *Limit
}

// Compile-time verification that all variants implement their interfaces
var (
	_ Expr = ColumnExpr{}
	_ Expr = LiteralExpr{}
	_ Expr = UnaryExpr{}
	_ Expr = BinaryExpr{}
	_ Expr = FuncExpr{}
	_ Expr = AggregateExpr{}
	_ Expr = CastExpr{}

	_ Lit = NullLit{}
	_ Lit = WrappedLit{}
	_ Lit = ValueLit{}

	_ Source = TableSource{}
	_ Source = QuerySource{}
)
