package ast

// Col references a column by name.
func Col(name string) ColumnExpr {
	return ColumnExpr{Name: name}
}

// Value creates a concrete literal expression. Each occurrence of the
// expression in a statement binds one parameter.
func Value(v any) LiteralExpr {
	return LiteralExpr{Lit: ValueLit{Value: v}}
}

// Null is the NULL literal expression.
func Null() LiteralExpr {
	return LiteralExpr{Lit: NullLit{}}
}

// Wrap lifts a literal into the nullable wrapper. The wrapper is
// invisible in rendered SQL.
func Wrap(lit Lit) LiteralExpr {
	return LiteralExpr{Lit: WrappedLit{Inner: lit}}
}

// --- Comparisons ---

func Eq(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpEq, Right: right} }
func Ne(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpNe, Right: right} }
func Lt(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpLt, Right: right} }
func Le(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpLe, Right: right} }
func Gt(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpGt, Right: right} }
func Ge(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpGe, Right: right} }
func Is(left, right Expr) BinaryExpr    { return BinaryExpr{Left: left, Op: OpIs, Right: right} }
func IsNot(left, right Expr) BinaryExpr { return BinaryExpr{Left: left, Op: OpIsNot, Right: right} }
func Like(left, right Expr) BinaryExpr  { return BinaryExpr{Left: left, Op: OpLike, Right: right} }

// --- Arithmetic ---

func Add(left, right Expr) BinaryExpr { return BinaryExpr{Left: left, Op: OpAdd, Right: right} }
func Sub(left, right Expr) BinaryExpr { return BinaryExpr{Left: left, Op: OpSub, Right: right} }
func Mul(left, right Expr) BinaryExpr { return BinaryExpr{Left: left, Op: OpMul, Right: right} }
func Div(left, right Expr) BinaryExpr { return BinaryExpr{Left: left, Op: OpDiv, Right: right} }

// --- Logic ---

// And combines expressions with AND.
// Returns nil if no expressions are provided.
// Returns the single expression if only one is provided.
func And(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	result := exprs[0]
	for _, expr := range exprs[1:] {
		result = BinaryExpr{Left: result, Op: OpAnd, Right: expr}
	}
	return result
}

// Or combines expressions with OR.
// Returns nil if no expressions are provided.
// Returns the single expression if only one is provided.
func Or(exprs ...Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	result := exprs[0]
	for _, expr := range exprs[1:] {
		result = BinaryExpr{Left: result, Op: OpOr, Right: expr}
	}
	return result
}

// Not negates an expression.
func Not(expr Expr) UnaryExpr {
	return UnaryExpr{Op: OpNot, Operand: expr}
}

// --- Unary functions ---

func Abs(expr Expr) UnaryExpr  { return UnaryExpr{Op: OpAbs, Operand: expr} }
func Sign(expr Expr) UnaryExpr { return UnaryExpr{Op: OpSign, Operand: expr} }
func Neg(expr Expr) UnaryExpr  { return UnaryExpr{Op: OpNegate, Operand: expr} }

// Func1 creates a one-argument named function call.
func Func1(name string, arg Expr) FuncExpr {
	return FuncExpr{Name: name, Args: []Expr{arg}}
}

// Func2 creates a two-argument named function call.
func Func2(name string, first, second Expr) FuncExpr {
	return FuncExpr{Name: name, Args: []Expr{first, second}}
}

// Agg applies a named aggregate function to an operand.
func Agg(name string, operand Expr) AggregateExpr {
	return AggregateExpr{Name: name, Operand: operand}
}

// Cast retags an expression's result type without changing its SQL.
func Cast(expr Expr) CastExpr {
	return CastExpr{Operand: expr}
}

// --- Query pieces ---

// Sel creates a bare output column.
func Sel(expr Expr) SelectExpr {
	return SelectExpr{Expr: expr}
}

// As creates an aliased output column.
func As(expr Expr, alias string) SelectExpr {
	return SelectExpr{Expr: expr, Alias: alias}
}

// Table names a base table as a query source.
func Table(name string) TableSource {
	return TableSource{Name: name}
}

// SubQueries joins nested queries as a cartesian product source.
func SubQueries(queries ...*Query) QuerySource {
	return QuerySource{Queries: queries}
}

// OrderAsc orders by an expression ascending.
func OrderAsc(expr Expr) OrderExpr {
	return OrderExpr{Expr: expr, Dir: Asc}
}

// OrderDesc orders by an expression descending.
func OrderDesc(expr Expr) OrderExpr {
	return OrderExpr{Expr: expr, Dir: Desc}
}
