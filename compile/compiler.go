// Package compile turns query, update, delete, and bare expression ASTs
// into prepared-statement SQL text plus an ordered parameter list.
//
// Placeholders are always the single character `?`. Identifiers are
// emitted verbatim; the typed layer upstream is responsible for their
// safety. Compilation is a pure tree walk: each entry point runs to
// completion over one parameter state and returns, with nothing shared
// across calls.
package compile

import (
	"fmt"
	"strings"

	"github.com/benny-medflyt/selda/ast"
)

// state holds the parameters collected during one compilation pass.
// Nested renders (sub-queries, assignment values, predicates) must share
// the same state so placeholder positions stay aligned with the values;
// only the entry points in this file may call finalize, exactly once.
type state struct {
	params []Param
}

func (s *state) push(v any) {
	s.params = append(s.params, Param{Value: v})
}

// finalize hands over the collected parameters in left-to-right
// encounter order. Called once per compilation, at the outermost level.
func (s *state) finalize() []Param {
	return s.params
}

// compiler drives one compilation pass over a single shared state.
type compiler struct {
	state *state
}

func newCompiler() *compiler {
	return &compiler{state: &state{}}
}

// =============================================================================
// Entry Points
// =============================================================================

// Query compiles a SELECT statement. The returned SQL ends in ";".
func Query(q *ast.Query) (Result, error) {
	c := newCompiler()
	var b strings.Builder
	if err := c.writeQuery(&b, q); err != nil {
		return Result{}, err
	}
	b.WriteString(";")
	return Result{SQL: b.String(), Params: c.state.finalize()}, nil
}

// Expr compiles a bare scalar expression, with no statement terminator.
func Expr(expr ast.Expr) (Result, error) {
	c := newCompiler()
	var b strings.Builder
	if err := c.writeExpr(&b, expr); err != nil {
		return Result{}, err
	}
	return Result{SQL: b.String(), Params: c.state.finalize()}, nil
}

// Assignment is one column = value pair in an UPDATE's SET clause.
type Assignment struct {
	Column string
	Value  ast.Expr
}

// Update compiles an UPDATE statement. Assignments whose rendered value
// is textually identical to the target column name rewrite nothing and
// are dropped from the SET clause. Parameters are collected assignment
// values first, in list order, then the predicate, matching the
// left-to-right placeholder order of the emitted text.
//
// If every assignment is dropped the SET clause is empty and the output
// is not valid SQL. That degenerate case is the caller's to avoid; see
// the known-boundary note in DESIGN.md.
func Update(table string, assigns []Assignment, pred ast.Expr) (Result, error) {
	c := newCompiler()

	var set strings.Builder
	wrote := false
	for _, a := range assigns {
		var vb strings.Builder
		if err := c.writeExpr(&vb, a.Value); err != nil {
			return Result{}, err
		}
		val := vb.String()
		if val == a.Column {
			// A value that renders as the bare column name contains no
			// placeholder, so skipping it leaves the state untouched.
			continue
		}
		if wrote {
			set.WriteString(", ")
		}
		set.WriteString(a.Column)
		set.WriteString(" = ")
		set.WriteString(val)
		wrote = true
	}

	var where strings.Builder
	if err := c.writeExpr(&where, pred); err != nil {
		return Result{}, err
	}

	sql := "UPDATE " + table + " SET " + set.String() + " WHERE " + where.String() + ";"
	return Result{SQL: sql, Params: c.state.finalize()}, nil
}

// Delete compiles a DELETE statement.
func Delete(table string, pred ast.Expr) (Result, error) {
	c := newCompiler()
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(table)
	b.WriteString(" WHERE ")
	if err := c.writeExpr(&b, pred); err != nil {
		return Result{}, err
	}
	b.WriteString(";")
	return Result{SQL: b.String(), Params: c.state.finalize()}, nil
}

// =============================================================================
// Query Writing
// =============================================================================

func (c *compiler) writeQuery(b *strings.Builder, q *ast.Query) error {
	if q == nil {
		return fmt.Errorf("nil query")
	}

	// SELECT clause
	b.WriteString("SELECT ")
	for i, col := range q.Cols {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := c.writeSelectExpr(b, col); err != nil {
			return err
		}
	}

	// FROM clause
	switch src := q.Source.(type) {
	case ast.TableSource:
		b.WriteString(" FROM ")
		b.WriteString(src.Name)
	case ast.QuerySource:
		if len(src.Queries) > 0 {
			b.WriteString(" FROM ")
			for i, sub := range src.Queries {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString("(")
				if err := c.writeQuery(b, sub); err != nil {
					return err
				}
				b.WriteString(")")
			}
		}
	case nil:
		// no source, no FROM clause
	default:
		return fmt.Errorf("unknown source type: %T", q.Source)
	}

	// WHERE clause
	if len(q.Restricts) > 0 {
		b.WriteString(" WHERE ")
		if err := c.writePredicates(b, q.Restricts); err != nil {
			return err
		}
	}

	// GROUP BY clause
	if len(q.GroupBy) > 0 {
		b.WriteString(" GROUP BY ")
		for i, expr := range q.GroupBy {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := c.writeExpr(b, expr); err != nil {
				return err
			}
		}
	}

	// ORDER BY clause
	if len(q.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		for i, ob := range q.OrderBy {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := c.writeExpr(b, ob.Expr); err != nil {
				return err
			}
			b.WriteString(" ")
			b.WriteString(string(ob.Dir))
		}
	}

	// LIMIT clause: offset and count are rendered inline, never bound
	if q.Limit != nil {
		fmt.Fprintf(b, " LIMIT %d,%d", q.Limit.Offset, q.Limit.Count)
	}

	return nil
}

// writeSelectExpr writes one output column, with AS when aliased.
func (c *compiler) writeSelectExpr(b *strings.Builder, col ast.SelectExpr) error {
	if err := c.writeExpr(b, col.Expr); err != nil {
		return err
	}
	if col.Alias != "" {
		b.WriteString(" AS ")
		b.WriteString(col.Alias)
	}
	return nil
}

// writePredicates writes a non-empty predicate list as one AND
// conjunction: (p1) AND (p2) AND (p3). Callers omit the clause entirely
// for an empty list.
func (c *compiler) writePredicates(b *strings.Builder, preds []ast.Expr) error {
	b.WriteString("(")
	for i, pred := range preds {
		if i > 0 {
			b.WriteString(") AND (")
		}
		if err := c.writeExpr(b, pred); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

// =============================================================================
// Expression Writing
// =============================================================================

func (c *compiler) writeExpr(b *strings.Builder, expr ast.Expr) error {
	switch e := expr.(type) {
	case ast.ColumnExpr:
		b.WriteString(e.Name)

	case ast.LiteralExpr:
		return c.writeLit(b, e.Lit)

	case ast.UnaryExpr:
		// ABS(x), SIGN(x), -(x), NOT(x): every unary op uses call syntax.
		b.WriteString(string(e.Op))
		b.WriteString("(")
		if err := c.writeExpr(b, e.Operand); err != nil {
			return err
		}
		b.WriteString(")")

	case ast.BinaryExpr:
		if err := c.writeOperand(b, e.Left); err != nil {
			return err
		}
		b.WriteString(" ")
		b.WriteString(string(e.Op))
		b.WriteString(" ")
		return c.writeOperand(b, e.Right)

	case ast.FuncExpr:
		b.WriteString(e.Name)
		b.WriteString("(")
		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			if err := c.writeExpr(b, arg); err != nil {
				return err
			}
		}
		b.WriteString(")")

	case ast.AggregateExpr:
		// Same rendering as a one-argument function call.
		b.WriteString(e.Name)
		b.WriteString("(")
		if err := c.writeExpr(b, e.Operand); err != nil {
			return err
		}
		b.WriteString(")")

	case ast.CastExpr:
		// Casts are type-level only and leave no trace in the SQL.
		return c.writeExpr(b, e.Operand)

	default:
		return fmt.Errorf("unknown expression type: %T", expr)
	}

	return nil
}

// writeOperand writes a binary operand, parenthesizing everything except
// the two simplest leaf forms. The rule is deliberately conservative: it
// does not model operator precedence, it only keeps bare columns and
// literals unwrapped.
func (c *compiler) writeOperand(b *strings.Builder, expr ast.Expr) error {
	switch expr.(type) {
	case ast.ColumnExpr, ast.LiteralExpr:
		return c.writeExpr(b, expr)
	}
	b.WriteString("(")
	if err := c.writeExpr(b, expr); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

func (c *compiler) writeLit(b *strings.Builder, lit ast.Lit) error {
	switch l := lit.(type) {
	case ast.NullLit:
		b.WriteString("NULL")
	case ast.WrappedLit:
		// The nullable wrapper renders as whatever it wraps.
		return c.writeLit(b, l.Inner)
	case ast.ValueLit:
		c.state.push(l.Value)
		b.WriteString("?")
	default:
		return fmt.Errorf("unknown literal type: %T", lit)
	}
	return nil
}
