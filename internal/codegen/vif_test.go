package codegen_test

import (
	"slices"
	"testing"

	"unikit/internal/ast"
	"unikit/internal/codegen"
	"unikit/internal/diag"
	"unikit/internal/source"
)

func TestCreateVIfConditionalExpressionEmptyBranch(t *testing.T) {
	f := newFixture()
	root := codegen.NewRootScope()
	chain := codegen.NewVIfChain(f.ctx, f.b, root)
	scope := chain.If(exprAt("show", 1, 1))

	cond := codegen.CreateVIfConditionalExpression(f.b, scope)
	if got, want := f.print(cond), "show ? {} : {}"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	data, ok := f.b.Exprs.Conditional(cond)
	if !ok {
		t.Fatal("not a conditional")
	}
	for _, side := range []ast.ExprID{data.Cons, data.Alt} {
		if f.b.Exprs.Kind(side) != ast.ExprObject {
			t.Errorf("branch side is %s, want object", f.b.Exprs.Kind(side))
		}
	}
}

func TestVIfChain(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T, f *fixture, chain *codegen.VIfChain)
		want  string
	}{
		{
			name: "single if",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				s := chain.If(exprAt("ok", 1, 1))
				s.Bind(f.b, f.parse(t, "msg"))
			},
			want: "{ a: ok, ...ok ? { b: msg } : {} }",
		},
		{
			name: "if else-if else",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				s := chain.If(exprAt("ok", 1, 1))
				s.Bind(f.b, f.parse(t, "msg"))
				chain.ElseIf(exprAt("other", 2, 1))
				e := chain.Else(source.LocStub)
				e.Bind(f.b, f.parse(t, "x"))
			},
			want: "{ a: ok, c: other, ...ok ? { b: msg } : other ? {} : { d: x } }",
		},
		{
			name: "falsy literal branch dropped",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				chain.If(exprAt("false", 1, 1))
				chain.ElseIf(exprAt("y", 2, 1))
			},
			want: "{ a: y, ...y ? {} : {} }",
		},
		{
			name: "truthy literal ends chain",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				s := chain.If(exprAt("1", 1, 1))
				s.Bind(f.b, f.parse(t, "v"))
				chain.Else(source.LocStub)
			},
			want: "{ ...{ a: v } }",
		},
		{
			name: "zero literal leaves no key",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				chain.If(exprAt("0", 1, 1))
				chain.ElseIf(exprAt("b", 2, 1))
			},
			want: "{ a: b, ...b ? {} : {} }",
		},
		{
			name: "branches after truthy literal are not bound",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				chain.If(exprAt("c", 1, 1))
				chain.ElseIf(exprAt("'yes'", 2, 1))
				chain.ElseIf(exprAt("d", 3, 1))
			},
			want: "{ a: c, ...c ? {} : {} }",
		},
		{
			name: "new if closes previous chain",
			build: func(t *testing.T, f *fixture, chain *codegen.VIfChain) {
				chain.If(exprAt("p", 1, 1))
				chain.If(exprAt("q", 2, 1))
			},
			want: "{ a: p, ...p ? {} : {}, b: q, ...q ? {} : {} }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			root := codegen.NewRootScope()
			chain := codegen.NewVIfChain(f.ctx, f.b, root)
			tt.build(t, f, chain)
			chain.Close()
			if chain.Open() {
				t.Fatal("chain still open after Close")
			}
			if got := f.print(root.Object(f.b)); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
			if f.bag.Len() != 0 {
				t.Errorf("unexpected diagnostics:\n%s", diag.FormatBag(f.bag))
			}
		})
	}
}

// Ложная ветка всегда объект, сколько бы условий ни было.
func TestVIfChainFalseSideNeverUndefined(t *testing.T) {
	for n := 1; n <= 5; n++ {
		f := newFixture()
		root := codegen.NewRootScope()
		chain := codegen.NewVIfChain(f.ctx, f.b, root)
		chain.If(exprAt("c0", 1, 1))
		for i := 1; i < n; i++ {
			chain.ElseIf(exprAt("c"+string(rune('0'+i)), 1, 1))
		}
		spread := chain.Close()
		s, ok := f.b.Exprs.Spread(spread)
		if !ok {
			t.Fatalf("n=%d: Close did not return a spread", n)
		}
		expr := s.Arg
		for depth := 0; depth < n; depth++ {
			c, ok := f.b.Exprs.Conditional(expr)
			if !ok {
				t.Fatalf("n=%d: depth %d is %s", n, depth, f.b.Exprs.Kind(expr))
			}
			if f.b.Exprs.Kind(c.Cons) != ast.ExprObject {
				t.Fatalf("n=%d: consequent is %s", n, f.b.Exprs.Kind(c.Cons))
			}
			expr = c.Alt
		}
		if f.b.Exprs.Kind(expr) != ast.ExprObject {
			t.Fatalf("n=%d: final alternate is %s, want object", n, f.b.Exprs.Kind(expr))
		}
	}
}

func TestVIfChainErrors(t *testing.T) {
	f := newFixture()
	root := codegen.NewRootScope()
	chain := codegen.NewVIfChain(f.ctx, f.b, root)

	if s := chain.ElseIf(exprAt("x", 3, 5)); s != nil {
		t.Fatal("else-if without if must fail")
	}
	if s := chain.Else(source.LocStub); s != nil {
		t.Fatal("else without if must fail")
	}
	chain.If(exprAt("a", 1, 1))
	chain.Else(source.LocStub)
	if s := chain.Else(source.LocStub); s != nil {
		t.Fatal("else after else must fail")
	}
	chain.Close()

	chain.If(exprAt("", 4, 1))
	chain.If(exprAt("a +", 5, 1))
	chain.Close()

	want := []diag.Code{
		diag.XVElseNoAdjacentIf,
		diag.XVElseNoAdjacentIf,
		diag.XVElseNoAdjacentIf,
		diag.XVIfNoExpression,
		diag.XInvalidExpression,
	}
	if got := f.codes(); !slices.Equal(got, want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	if d := f.bag.Items()[0]; d.Primary.Start.Line != 3 || d.Primary.Start.Column != 5 {
		t.Errorf("else-if error at %s, want 3:5", d.Primary)
	}
	if f.ctx.Errors() != len(want) {
		t.Errorf("Errors() = %d, want %d", f.ctx.Errors(), len(want))
	}
}
