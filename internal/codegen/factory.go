package codegen

import (
	"unikit/internal/ast"
	"unikit/internal/source"
)

var noSpan source.Span

func CreateIdentifier(b *ast.Builder, name string) ast.ExprID {
	return b.Exprs.NewIdent(noSpan, name)
}

// CreateObjectProperty builds `name: value`.
func CreateObjectProperty(b *ast.Builder, name string, value ast.ExprID) ast.ExprID {
	return b.Exprs.NewProperty(noSpan, CreateIdentifier(b, name), value, false, false)
}

func CreateSpreadElement(b *ast.Builder, arg ast.ExprID) ast.ExprID {
	return b.Exprs.NewSpread(noSpan, arg)
}

func CreateObjectExpression(b *ast.Builder, props []ast.ExprID) ast.ExprID {
	return b.Exprs.NewObject(noSpan, props)
}

// CreateVIfProperty records a branch test under a fresh key of scope.
func CreateVIfProperty(b *ast.Builder, condition ast.ExprID, scope *CodegenScope) ast.ExprID {
	return CreateObjectProperty(b, scope.ID().Next(), condition)
}

// CreateVIfConditionalExpression builds `cond ? { ...props } : {}`.
func CreateVIfConditionalExpression(b *ast.Builder, vif *VIfScope) ast.ExprID {
	return b.Exprs.NewConditional(noSpan,
		vif.Condition,
		CreateObjectExpression(b, vif.Properties),
		CreateObjectExpression(b, nil),
	)
}

func CreateVIfSpreadElement(b *ast.Builder, vif *VIfScope) ast.ExprID {
	return CreateSpreadElement(b, CreateVIfConditionalExpression(b, vif))
}

// CreateVForCallExpression builds `_vFor(source, (value, key, index) => { return { ... }; })`.
func CreateVForCallExpression(b *ast.Builder, vfor *VForScope, ctx TransformContext) ast.ExprID {
	callee := CreateIdentifier(b, ctx.HelperString(HelperVFor))
	return b.Exprs.NewCall(noSpan, callee, []ast.ExprID{
		vfor.Source,
		createVForArrowFunctionExpression(b, vfor),
	}, false)
}

// Пропущенные позиции заполняются `_` и `__`, чтобы index оставался третьим.
func createVForArrowFunctionExpression(b *ast.Builder, vfor *VForScope) ast.ExprID {
	params := make([]ast.ExprID, 0, 3)
	switch {
	case vfor.Value.IsValid():
		params = append(params, vfor.Value)
	case vfor.Key.IsValid() || vfor.Index.IsValid():
		params = append(params, CreateIdentifier(b, "_"))
	}
	switch {
	case vfor.Key.IsValid():
		params = append(params, vfor.Key)
	case vfor.Index.IsValid():
		params = append(params, CreateIdentifier(b, "__"))
	}
	if vfor.Index.IsValid() {
		params = append(params, vfor.Index)
	}
	return b.Exprs.NewArrow(noSpan, params, CreateObjectExpression(b, vfor.Properties), true)
}

func createDirectiveNode(name, arg, exp string) *ast.DirectiveNode {
	return &ast.DirectiveNode{
		Name:      name,
		Modifiers: []string{},
		Loc:       source.LocStub,
		Arg:       ast.NewSimpleExpression(arg, true, source.LocStub),
		Exp:       ast.NewSimpleExpression(exp, false, source.LocStub),
	}
}

// CreateOnDirectiveNode builds `v-on:name="value"`.
func CreateOnDirectiveNode(name, value string) *ast.DirectiveNode {
	return createDirectiveNode("on", name, value)
}

// CreateBindDirectiveNode builds `v-bind:name="value"`.
func CreateBindDirectiveNode(name, value string) *ast.DirectiveNode {
	return createDirectiveNode("bind", name, value)
}

func CreateAttributeNode(name, content string) *ast.AttributeNode {
	return &ast.AttributeNode{
		Name: name,
		Loc:  source.LocStub,
		Value: &ast.TextNode{
			Content: content,
			Loc:     source.LocStub,
		},
	}
}
