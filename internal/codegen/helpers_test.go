package codegen_test

import (
	"testing"

	"unikit/internal/ast"
	"unikit/internal/codegen"
	"unikit/internal/diag"
	"unikit/internal/printer"
	"unikit/internal/source"
)

type fixture struct {
	bag *diag.Bag
	ctx *codegen.Context
	b   *ast.Builder
}

func newFixture() *fixture {
	bag := diag.NewBag(64)
	return &fixture{
		bag: bag,
		ctx: codegen.NewContext(codegen.Options{Reporter: &diag.BagReporter{Bag: bag}}),
		b:   ast.NewBuilder(ast.Hints{}),
	}
}

func (f *fixture) parse(t *testing.T, code string) ast.ExprID {
	t.Helper()
	id, ok := codegen.ParseExpr(f.ctx, f.b, code, nil)
	if !ok {
		t.Fatalf("parse %q: %s", code, diag.FormatBag(f.bag))
	}
	return id
}

func (f *fixture) print(id ast.ExprID) string {
	return printer.Expr(f.b, id)
}

func (f *fixture) codes() []diag.Code {
	var out []diag.Code
	for _, d := range f.bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func exprAt(content string, line, col uint32) *ast.SimpleExpression {
	loc := source.Location{
		File:   "pages/index.vue",
		Start:  source.Position{Offset: 100, Line: line, Column: col},
		Source: content,
	}
	loc.End = loc.Start.Advance(content)
	return ast.NewSimpleExpression(content, false, loc)
}
