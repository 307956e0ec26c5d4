package ast

import (
	"testing"

	"unikit/internal/source"
)

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatalf("empty arena must return nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 || a.Len() != 1 {
		t.Fatalf("Allocate/Get mismatch: id=%d", id)
	}
}

func TestAccessorsCheckKind(t *testing.T) {
	b := NewBuilder(Hints{})
	x := b.Exprs.NewIdent(source.Span{Start: 0, End: 1}, "x")
	one := b.Exprs.NewLiteral(source.Span{}, LitNumeric, "1")

	if _, ok := b.Exprs.Literal(x); ok {
		t.Fatalf("Literal accessor accepted an identifier")
	}
	if id, ok := b.Exprs.Ident(x); !ok || id.Name != "x" {
		t.Fatalf("Ident accessor failed")
	}
	if _, ok := b.Exprs.Ident(NoExprID); ok {
		t.Fatalf("NoExprID must not resolve")
	}

	and := b.Exprs.NewBinary(source.Span{}, BinLogicalAnd, x, one)
	add := b.Exprs.NewBinary(source.Span{}, BinAdd, x, one)
	if b.Exprs.Kind(and) != ExprLogical || b.Exprs.Kind(add) != ExprBinary {
		t.Fatalf("kinds: and=%v add=%v", b.Exprs.Kind(and), b.Exprs.Kind(add))
	}
	if bin, ok := b.Exprs.Binary(and); !ok || bin.Op != BinLogicalAnd {
		t.Fatalf("Binary accessor must accept logical nodes")
	}
}

func TestUnparen(t *testing.T) {
	b := NewBuilder(Hints{})
	x := b.Exprs.NewIdent(source.Span{}, "x")
	p := b.Exprs.NewParen(source.Span{}, b.Exprs.NewParen(source.Span{}, x))
	if got := b.Exprs.Unparen(p); got != x {
		t.Fatalf("Unparen = %d, want %d", got, x)
	}
}

func TestNewCopiesSlices(t *testing.T) {
	b := NewBuilder(Hints{})
	props := []ExprID{b.Exprs.NewIdent(source.Span{}, "a")}
	obj := b.Exprs.NewObject(source.Span{}, props)
	props[0] = NoExprID
	data, _ := b.Exprs.Object(obj)
	if data.Props[0] == NoExprID {
		t.Fatalf("NewObject must not alias the caller's slice")
	}
}

func TestSimpleExpressionConstType(t *testing.T) {
	if e := NewSimpleExpression("click", true, source.LocStub); e.ConstType != CanStringify {
		t.Errorf("static ConstType = %v", e.ConstType)
	}
	if e := NewSimpleExpression("onTap", false, source.LocStub); e.ConstType != NotConstant || e.IsStatic {
		t.Errorf("dynamic expression flags wrong: %+v", e)
	}
}
