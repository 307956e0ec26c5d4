package codegen_test

import (
	"strings"
	"testing"

	"unikit/internal/ast"
	"unikit/internal/codegen"
	"unikit/internal/diag"
)

type recordingContext struct {
	errs []*codegen.CompileError
}

func (r *recordingContext) OnError(err *codegen.CompileError) { r.errs = append(r.errs, err) }

func (r *recordingContext) HelperString(h codegen.Helper) string { return "$" + string(h) }

func TestParseExprReportsInvalidExpression(t *testing.T) {
	ctx := &recordingContext{}
	b := ast.NewBuilder(ast.Hints{})
	node := exprAt("a +", 5, 12)

	id, ok := codegen.ParseExpr(ctx, b, node.Content, node)
	if ok || id.IsValid() {
		t.Fatal("expected failure")
	}
	if len(ctx.errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(ctx.errs))
	}
	err := ctx.errs[0]
	if err.Code != diag.XInvalidExpression {
		t.Errorf("code = %s", err.Code.ID())
	}
	if err.Loc == nil || *err.Loc != node.Loc {
		t.Errorf("loc = %v, want node location", err.Loc)
	}
	if !strings.Contains(err.Message, "expected expression") {
		t.Errorf("message = %q", err.Message)
	}
	if len(err.Notes) != 1 {
		t.Fatalf("notes = %v", err.Notes)
	}
	if n := err.Notes[0].Loc.Start; n.Line != 5 || n.Column != 15 {
		t.Errorf("note at %d:%d, want 5:15", n.Line, n.Column)
	}
}

func TestParseExprWithoutNode(t *testing.T) {
	ctx := &recordingContext{}
	b := ast.NewBuilder(ast.Hints{})
	if _, ok := codegen.ParseExpr(ctx, b, ")", nil); ok {
		t.Fatal("expected failure")
	}
	if len(ctx.errs) != 1 || ctx.errs[0].Loc != nil {
		t.Fatalf("errors = %+v", ctx.errs)
	}
	if !strings.HasPrefix(ctx.errs[0].Error(), diag.XInvalidExpression.Title()) {
		t.Errorf("Error() = %q", ctx.errs[0].Error())
	}
}

func TestParseExprNodeCachesTree(t *testing.T) {
	f := newFixture()
	node := exprAt("a+b", 1, 1)
	id, ok := codegen.ParseExprNode(f.ctx, f.b, node)
	if !ok {
		t.Fatal(diag.FormatBag(f.bag))
	}
	if node.AST != id {
		t.Fatalf("node.AST = %d, want %d", node.AST, id)
	}
	if got := codegen.GenExpr(f.b, node); got != "a + b" {
		t.Errorf("GenExpr = %q", got)
	}
	again, ok := codegen.ParseExprNode(f.ctx, f.b, node)
	if !ok || f.print(again) != "a + b" {
		t.Errorf("reparse = %q", f.print(again))
	}
}

func TestParseParam(t *testing.T) {
	tests := []struct {
		code string
		kind ast.ExprKind
		want string
	}{
		{"item", ast.ExprIdent, "item"},
		{"{ id, name }", ast.ExprObject, "{ id, name }"},
		{"[first, ...rest]", ast.ExprArray, "[first, ...rest]"},
		{"item = {}", ast.ExprAssign, "item = {}"},
		{"a, b", ast.ExprIdent, "a"},
	}
	for _, tt := range tests {
		f := newFixture()
		id, ok := codegen.ParseParam(f.ctx, f.b, tt.code, nil)
		if !ok {
			t.Errorf("%q: %s", tt.code, diag.FormatBag(f.bag))
			continue
		}
		if k := f.b.Exprs.Kind(id); k != tt.kind {
			t.Errorf("%q: kind %s, want %s", tt.code, k, tt.kind)
		}
		if got := f.print(id); got != tt.want {
			t.Errorf("%q: printed %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestParseParamErrors(t *testing.T) {
	for _, code := range []string{"", "1", "a.b", "a +"} {
		ctx := &recordingContext{}
		b := ast.NewBuilder(ast.Hints{})
		if _, ok := codegen.ParseParam(ctx, b, code, exprAt(code, 2, 3)); ok {
			t.Errorf("%q: expected failure", code)
			continue
		}
		if len(ctx.errs) != 1 || ctx.errs[0].Code != diag.XInvalidExpression {
			t.Errorf("%q: errors %+v", code, ctx.errs)
		}
	}
}

func TestParseParamLocationSkipsWrapper(t *testing.T) {
	ctx := &recordingContext{}
	b := ast.NewBuilder(ast.Hints{})
	codegen.ParseParam(ctx, b, "a b", exprAt("a b", 4, 10))
	if len(ctx.errs) != 1 || len(ctx.errs[0].Notes) != 1 {
		t.Fatalf("errors = %+v", ctx.errs)
	}
	// `b` at column 12 of the template
	if n := ctx.errs[0].Notes[0].Loc.Start; n.Line != 4 || n.Column != 12 {
		t.Errorf("note at %d:%d, want 4:12", n.Line, n.Column)
	}
}

func TestContextHelperPrefix(t *testing.T) {
	ctx := codegen.NewContext(codegen.Options{HelperPrefix: "_uni_"})
	if got := ctx.HelperString(codegen.HelperVFor); got != "_uni_vFor" {
		t.Errorf("HelperString = %q", got)
	}
	if got := codegen.NewContext(codegen.Options{}).HelperString(codegen.HelperVFor); got != "_vFor" {
		t.Errorf("default HelperString = %q", got)
	}
}

func TestContextOnErrorReports(t *testing.T) {
	f := newFixture()
	node := exprAt("x", 9, 2)
	f.ctx.OnError(&codegen.CompileError{
		Code:    diag.XVForNoExpression,
		Loc:     &node.Loc,
		Message: "v-for is missing expression",
		Notes:   []diag.Note{{Loc: node.Loc, Msg: "here"}},
	})
	f.ctx.OnError(nil)
	if f.bag.Len() != 1 {
		t.Fatalf("bag has %d items", f.bag.Len())
	}
	d := f.bag.Items()[0]
	if d.Severity != diag.SevError || d.Primary.Start.Line != 9 || len(d.Notes) != 1 {
		t.Errorf("diagnostic = %+v", d)
	}
}
