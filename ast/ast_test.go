package ast

import "testing"

func TestAndOr(t *testing.T) {
	t.Run("EmptyIsNil", func(t *testing.T) {
		if And() != nil {
			t.Error("And() should be nil")
		}
		if Or() != nil {
			t.Error("Or() should be nil")
		}
	})

	t.Run("SingleIsIdentity", func(t *testing.T) {
		e := Eq(Col("a"), Value(1))
		if got := And(e); got != Expr(e) {
			t.Errorf("And(e) = %v, want e", got)
		}
		if got := Or(e); got != Expr(e) {
			t.Errorf("Or(e) = %v, want e", got)
		}
	})

	t.Run("LeftAssociative", func(t *testing.T) {
		a, b, c := Col("a"), Col("b"), Col("c")
		got, ok := And(a, b, c).(BinaryExpr)
		if !ok {
			t.Fatalf("And(a, b, c) is not a BinaryExpr")
		}
		if got.Op != OpAnd {
			t.Errorf("outer op = %v, want AND", got.Op)
		}
		inner, ok := got.Left.(BinaryExpr)
		if !ok || inner.Left != Expr(a) || inner.Right != Expr(b) {
			t.Errorf("And should fold from the left, got %v", got.Left)
		}
		if got.Right != Expr(c) {
			t.Errorf("outer right = %v, want c", got.Right)
		}
	})
}

func TestFuncArity(t *testing.T) {
	if f := Func1("LOWER", Col("x")); len(f.Args) != 1 {
		t.Errorf("Func1 arity = %d", len(f.Args))
	}
	if f := Func2("COALESCE", Col("x"), Null()); len(f.Args) != 2 {
		t.Errorf("Func2 arity = %d", len(f.Args))
	}
}

func TestWrapNesting(t *testing.T) {
	lit := Wrap(WrappedLit{Inner: ValueLit{Value: 1}})
	outer, ok := lit.Lit.(WrappedLit)
	if !ok {
		t.Fatalf("Wrap did not produce a WrappedLit")
	}
	inner, ok := outer.Inner.(WrappedLit)
	if !ok {
		t.Fatalf("inner wrapper lost: %T", outer.Inner)
	}
	if v, ok := inner.Inner.(ValueLit); !ok || v.Value != 1 {
		t.Errorf("innermost literal lost: %v", inner.Inner)
	}
}
