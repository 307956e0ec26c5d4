package codegen

import (
	"unikit/internal/ast"
	"unikit/internal/diag"
	"unikit/internal/parser"
	"unikit/internal/printer"
	"unikit/internal/source"
)

const fragmentName = "<expression>"

// ParseExpr parses code into b. On failure it reports XInvalidExpression
// through ctx, located at node when node is given, and returns false.
func ParseExpr(ctx TransformContext, b *ast.Builder, code string, node *ast.SimpleExpression) (ast.ExprID, bool) {
	return parseFragment(ctx, b, code, node, 0)
}

// ParseExprNode regenerates the code of node and parses it.
func ParseExprNode(ctx TransformContext, b *ast.Builder, node *ast.SimpleExpression) (ast.ExprID, bool) {
	if node == nil {
		reportError(ctx, diag.XInvalidExpression, nil, "missing expression")
		return ast.NoExprID, false
	}
	id, ok := ParseExpr(ctx, b, GenExpr(b, node), node)
	if ok {
		node.AST = id
	}
	return id, ok
}

// ParseParam parses a parameter list fragment such as `item` or
// `{ id, name }` and returns its first pattern.
func ParseParam(ctx TransformContext, b *ast.Builder, code string, node *ast.SimpleExpression) (ast.ExprID, bool) {
	id, ok := parseFragment(ctx, b, "("+code+")=>{}", node, 1)
	if !ok {
		return ast.NoExprID, false
	}
	arrow, ok := b.Exprs.Arrow(id)
	if !ok || len(arrow.Params) == 0 {
		var loc *source.Location
		if node != nil {
			loc = &node.Loc
		}
		reportError(ctx, diag.XInvalidExpression, loc, "expected a parameter, got "+quoteOrEmpty(code))
		return ast.NoExprID, false
	}
	return arrow.Params[0], true
}

// GenExpr returns source text for node: the printed tree once parsed,
// the raw content before that.
func GenExpr(b *ast.Builder, node *ast.SimpleExpression) string {
	if node == nil {
		return ""
	}
	if node.AST.IsValid() && b != nil && b.Exprs.Get(node.AST) != nil {
		return printer.Expr(b, node.AST)
	}
	return node.Content
}

// parseFragment: prefix - сколько байт обёртки стоит перед пользовательским
// кодом, чтобы позиции ошибок указывали в шаблон.
func parseFragment(ctx TransformContext, b *ast.Builder, code string, node *ast.SimpleExpression, prefix uint32) (ast.ExprID, bool) {
	name := fragmentName
	var base source.Position
	if node != nil && !node.Loc.IsStub() {
		if node.Loc.File != "" {
			name = node.Loc.File
		}
		base = node.Loc.Start
		if base.Column > prefix && base.Offset >= prefix {
			base.Column -= prefix
			base.Offset -= prefix
		}
	}

	bag := diag.NewBag(8)
	file := source.NewVirtualFile(name, code)
	id, ok := parser.ParseExpression(file, b, parser.Options{
		Reporter: &diag.BagReporter{Bag: bag},
		Base:     base,
	})
	if ok {
		return id, true
	}

	cerr := &CompileError{Code: diag.XInvalidExpression, Message: "invalid expression"}
	if node != nil {
		cerr.Loc = &node.Loc
	}
	if first, found := bag.First(); found {
		cerr.Message = first.Message
		if first.HasLocation() {
			cerr.Notes = append(cerr.Notes, diag.Note{Loc: first.Primary, Msg: first.Code.ID()})
		}
	}
	if ctx != nil {
		ctx.OnError(cerr)
	}
	return ast.NoExprID, false
}

func quoteOrEmpty(s string) string {
	if s == "" {
		return "nothing"
	}
	return "'" + s + "'"
}
