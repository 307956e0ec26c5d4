// Package testkit holds checks shared by parser and codegen tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"unikit/internal/ast"
	"unikit/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// expression tree:
// 1) every node span is non-empty and within the fragment content
// 2) every child span is contained in its parent span
// 3) siblings do not overlap and keep source order
func CheckSpanInvariants(b *ast.Builder, root ast.ExprID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkNode(b.Exprs, root, source.Span{Start: 0, End: lenContent})
}

func checkNode(exprs *ast.Exprs, id ast.ExprID, parent source.Span) error {
	x := exprs.Get(id)
	if x == nil {
		return fmt.Errorf("node %d not found", id)
	}
	sp := x.Span
	if sp.End <= sp.Start {
		return fmt.Errorf("%s: empty span %v", x.Kind, sp)
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("%s: span %v is outside parent span %v", x.Kind, sp, parent)
	}

	var prev source.Span
	for i, child := range children(exprs, id) {
		if !child.IsValid() {
			continue
		}
		if err := checkNode(exprs, child, sp); err != nil {
			return err
		}
		csp := exprs.Get(child).Span
		if i > 0 && !prev.Empty() && csp.Start < prev.End {
			return fmt.Errorf("%s: child span %v overlaps previous %v", x.Kind, csp, prev)
		}
		prev = csp
	}
	return nil
}

// children lists direct subexpressions in source order. Holes stay as
// NoExprID.
func children(exprs *ast.Exprs, id ast.ExprID) []ast.ExprID {
	switch exprs.Kind(id) {
	case ast.ExprTemplate:
		d, _ := exprs.Template(id)
		return append([]ast.ExprID{d.Tag}, d.Exprs...)
	case ast.ExprArray:
		d, _ := exprs.Array(id)
		return d.Elems
	case ast.ExprObject:
		d, _ := exprs.Object(id)
		return d.Props
	case ast.ExprProperty:
		d, _ := exprs.Property(id)
		if d.Shorthand {
			// ключ и значение делят один идентификатор
			return []ast.ExprID{d.Value}
		}
		return []ast.ExprID{d.Key, d.Value}
	case ast.ExprSpread:
		d, _ := exprs.Spread(id)
		return []ast.ExprID{d.Arg}
	case ast.ExprCall, ast.ExprNew:
		d, _ := exprs.Call(id)
		return append([]ast.ExprID{d.Callee}, d.Args...)
	case ast.ExprMember:
		d, _ := exprs.Member(id)
		return []ast.ExprID{d.Object}
	case ast.ExprIndex:
		d, _ := exprs.Index(id)
		return []ast.ExprID{d.Object, d.Index}
	case ast.ExprUnary:
		d, _ := exprs.Unary(id)
		return []ast.ExprID{d.Operand}
	case ast.ExprUpdate:
		d, _ := exprs.Update(id)
		return []ast.ExprID{d.Operand}
	case ast.ExprBinary, ast.ExprLogical:
		d, _ := exprs.Binary(id)
		return []ast.ExprID{d.Left, d.Right}
	case ast.ExprConditional:
		d, _ := exprs.Conditional(id)
		return []ast.ExprID{d.Test, d.Cons, d.Alt}
	case ast.ExprAssign:
		d, _ := exprs.Assign(id)
		return []ast.ExprID{d.Target, d.Value}
	case ast.ExprSequence:
		d, _ := exprs.Sequence(id)
		return d.Exprs
	case ast.ExprArrow:
		d, _ := exprs.Arrow(id)
		return append(append([]ast.ExprID(nil), d.Params...), d.Body)
	case ast.ExprParen:
		d, _ := exprs.Paren(id)
		return []ast.ExprID{d.Inner}
	}
	return nil
}
