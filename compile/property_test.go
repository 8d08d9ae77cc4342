package compile

import (
	"strings"
	"testing"

	"github.com/benny-medflyt/selda/ast"
	"github.com/benny-medflyt/selda/proptest"
)

// =============================================================================
// Random AST Generators
// =============================================================================

func genValue(g *proptest.Generator) any {
	switch g.Intn(4) {
	case 0:
		return g.IntRange(-1000, 1000)
	case 1:
		return g.Int64()
	case 2:
		return g.Float64()
	default:
		return g.Ident(8)
	}
}

func genLit(g *proptest.Generator, depth int) ast.Lit {
	if depth > 0 && g.BoolWithProb(0.3) {
		return ast.WrappedLit{Inner: genLit(g, depth-1)}
	}
	if g.BoolWithProb(0.2) {
		return ast.NullLit{}
	}
	return ast.ValueLit{Value: genValue(g)}
}

func genExpr(g *proptest.Generator, depth int) ast.Expr {
	if depth <= 0 {
		if g.Bool() {
			return ast.Col(g.Ident(10))
		}
		return ast.LiteralExpr{Lit: genLit(g, 2)}
	}

	return proptest.OneOfFunc(g,
		func(g *proptest.Generator) ast.Expr { return ast.Col(g.Ident(10)) },
		func(g *proptest.Generator) ast.Expr { return ast.LiteralExpr{Lit: genLit(g, 2)} },
		func(g *proptest.Generator) ast.Expr {
			op := proptest.OneOf(g, ast.OpAbs, ast.OpSign, ast.OpNegate, ast.OpNot)
			return ast.UnaryExpr{Op: op, Operand: genExpr(g, depth-1)}
		},
		func(g *proptest.Generator) ast.Expr {
			op := proptest.OneOf(g,
				ast.OpGt, ast.OpLt, ast.OpGe, ast.OpLe, ast.OpEq, ast.OpNe,
				ast.OpIs, ast.OpIsNot, ast.OpAnd, ast.OpOr,
				ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpLike,
			)
			return ast.BinaryExpr{Left: genExpr(g, depth-1), Op: op, Right: genExpr(g, depth-1)}
		},
		func(g *proptest.Generator) ast.Expr {
			if g.Bool() {
				return ast.Func1(strings.ToUpper(g.Ident(6)), genExpr(g, depth-1))
			}
			return ast.Func2(strings.ToUpper(g.Ident(6)), genExpr(g, depth-1), genExpr(g, depth-1))
		},
		func(g *proptest.Generator) ast.Expr {
			return ast.Agg(strings.ToUpper(g.Ident(6)), genExpr(g, depth-1))
		},
		func(g *proptest.Generator) ast.Expr { return ast.Cast(genExpr(g, depth-1)) },
	)
}

func genQuery(g *proptest.Generator, depth int) *ast.Query {
	q := &ast.Query{
		Cols: proptest.SliceN(g, 1, 4, func(g *proptest.Generator) ast.SelectExpr {
			col := ast.SelectExpr{Expr: genExpr(g, 2)}
			if g.Bool() {
				col.Alias = g.Ident(8)
			}
			return col
		}),
		Restricts: proptest.Slice(g, 3, func(g *proptest.Generator) ast.Expr {
			return genExpr(g, 2)
		}),
		GroupBy: proptest.Slice(g, 2, func(g *proptest.Generator) ast.Expr {
			return genExpr(g, 1)
		}),
		OrderBy: proptest.Slice(g, 2, func(g *proptest.Generator) ast.OrderExpr {
			return ast.OrderExpr{Expr: genExpr(g, 1), Dir: proptest.OneOf(g, ast.Asc, ast.Desc)}
		}),
	}

	if depth > 0 && g.BoolWithProb(0.3) {
		q.Source = ast.QuerySource{Queries: proptest.SliceN(g, 1, 3, func(g *proptest.Generator) *ast.Query {
			return genQuery(g, depth-1)
		})}
	} else if g.BoolWithProb(0.8) {
		q.Source = ast.Table(g.Ident(10))
	} else {
		q.Source = ast.QuerySource{}
	}

	if g.BoolWithProb(0.3) {
		q.Limit = &ast.Limit{Offset: g.Intn(100), Count: g.Intn(100)}
	}

	return q
}

// =============================================================================
// Properties
// =============================================================================

func TestProperty_PlaceholdersMatchParams(t *testing.T) {
	proptest.Check(t, "placeholder count equals param count", proptest.Config{NumTrials: 300}, func(g *proptest.Generator) bool {
		res, err := Query(genQuery(g, 2))
		if err != nil {
			t.Logf("compile error: %v", err)
			return false
		}
		return strings.Count(res.SQL, "?") == len(res.Params)
	})
}

func TestProperty_SelectEndsInTerminator(t *testing.T) {
	proptest.Check(t, "select ends in exactly one terminator", proptest.Config{NumTrials: 200}, func(g *proptest.Generator) bool {
		res, err := Query(genQuery(g, 2))
		if err != nil {
			return false
		}
		return strings.HasSuffix(res.SQL, ";") && strings.Count(res.SQL, ";") == 1
	})
}

func TestProperty_Deterministic(t *testing.T) {
	proptest.Check(t, "recompilation is byte-identical", proptest.Config{NumTrials: 200}, func(g *proptest.Generator) bool {
		q := genQuery(g, 2)
		first, err := Query(q)
		if err != nil {
			return false
		}
		second, err := Query(q)
		if err != nil {
			return false
		}
		if first.SQL != second.SQL || len(first.Params) != len(second.Params) {
			return false
		}
		for i := range first.Params {
			if first.Params[i].Value != second.Params[i].Value {
				return false
			}
		}
		return true
	})
}

func TestProperty_ExprPlaceholdersMatchParams(t *testing.T) {
	proptest.Check(t, "bare expression placeholders match params", proptest.Config{NumTrials: 300}, func(g *proptest.Generator) bool {
		res, err := Expr(genExpr(g, 4))
		if err != nil {
			return false
		}
		if strings.Count(res.SQL, "?") != len(res.Params) {
			return false
		}
		return !strings.HasSuffix(res.SQL, ";")
	})
}

func TestProperty_UpdateParamOrder(t *testing.T) {
	// Assignment values bind before the predicate, matching placeholder
	// order in the emitted text.
	proptest.Check(t, "update binds assignments before predicate", proptest.Config{NumTrials: 200}, func(g *proptest.Generator) bool {
		assigns := proptest.SliceN(g, 1, 4, func(g *proptest.Generator) Assignment {
			return Assignment{Column: g.Ident(8), Value: genExpr(g, 2)}
		})
		res, err := Update(g.Ident(10), assigns, genExpr(g, 2))
		if err != nil {
			return false
		}
		return strings.Count(res.SQL, "?") == len(res.Params)
	})
}
