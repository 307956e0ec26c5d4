package codegen

import (
	"regexp"
	"strings"

	"unikit/internal/ast"
	"unikit/internal/diag"
)

var (
	forAliasRE    = regexp.MustCompile(`^([\s\S]*?)\s+(?:in|of)\s+([\s\S]*)`)
	forIteratorRE = regexp.MustCompile(`,([^,}\]]*)(?:,([^,}\]]*))?$`)
)

// ForPart is one piece of a v-for expression and its byte offset in the
// directive value. Content is empty when the part is absent.
type ForPart struct {
	Content string
	Offset  int
}

// ForParseResult splits `(value, key, index) in source`.
type ForParseResult struct {
	Source ForPart
	Value  ForPart
	Key    ForPart
	Index  ForPart
}

// ParseForExpression splits a v-for value. ok is false when there is no
// `in`/`of` separator.
func ParseForExpression(text string) (ForParseResult, bool) {
	var res ForParseResult
	m := forAliasRE.FindStringSubmatchIndex(text)
	if m == nil {
		return res, false
	}
	res.Source = trimPart(text[m[4]:m[5]], m[4])

	lhs := trimPart(text[m[2]:m[3]], m[2])
	lhs = trimPart(stripParens(lhs))

	iter := forIteratorRE.FindStringSubmatchIndex(lhs.Content)
	if iter != nil {
		if iter[3] > iter[2] {
			res.Key = trimPart(lhs.Content[iter[2]:iter[3]], lhs.Offset+iter[2])
		}
		if iter[4] >= 0 && iter[5] > iter[4] {
			res.Index = trimPart(lhs.Content[iter[4]:iter[5]], lhs.Offset+iter[4])
		}
		lhs = trimPart(lhs.Content[:iter[0]], lhs.Offset)
	}
	res.Value = lhs
	return res, true
}

func trimPart(s string, offset int) ForPart {
	trimmed := strings.TrimLeft(s, " \t\r\n\f\v")
	offset += len(s) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " \t\r\n\f\v")
	if trimmed == "" {
		return ForPart{}
	}
	return ForPart{Content: trimmed, Offset: offset}
}

// stripParens снимает ведущую `(` и завершающую `)` независимо друг от друга.
func stripParens(p ForPart) (string, int) {
	s, off := p.Content, p.Offset
	if strings.HasPrefix(s, "(") {
		s = s[1:]
		off++
	}
	s = strings.TrimSuffix(s, ")")
	return s, off
}

// VForScope is one v-for directive being compiled. Its body properties use
// their own key generator: they live in the per-item object.
type VForScope struct {
	CodegenScope
	Source ast.ExprID
	Value  ast.ExprID
	Key    ast.ExprID
	Index  ast.ExprID

	ValueAlias string
	KeyAlias   string
	IndexAlias string
	// Locals are the names bound by the aliases, in binding order.
	Locals []string
}

// NewVForScope parses the v-for value exp. Errors are reported through ctx
// and yield a nil scope.
func NewVForScope(ctx TransformContext, b *ast.Builder, parent *CodegenScope, exp *ast.SimpleExpression) (*VForScope, bool) {
	span := beginSpan(ctx, "codegen/vfor")
	defer span.End("")

	if exp == nil || strings.TrimSpace(exp.Content) == "" {
		reportError(ctx, diag.XVForNoExpression, locOf(exp), "v-for is missing expression")
		return nil, false
	}
	parts, ok := ParseForExpression(exp.Content)
	if !ok || parts.Source.Content == "" {
		reportError(ctx, diag.XVForMalformedExpression, locOf(exp), "v-for has invalid expression: "+exp.Content)
		return nil, false
	}

	scope := &VForScope{
		CodegenScope: CodegenScope{Parent: parent, ids: &IDGen{}},
		ValueAlias:   parts.Value.Content,
		KeyAlias:     parts.Key.Content,
		IndexAlias:   parts.Index.Content,
	}
	if scope.Source, ok = ParseExpr(ctx, b, parts.Source.Content, subExpression(exp, parts.Source)); !ok {
		return nil, false
	}
	for _, alias := range []struct {
		part ForPart
		dst  *ast.ExprID
	}{
		{parts.Value, &scope.Value},
		{parts.Key, &scope.Key},
		{parts.Index, &scope.Index},
	} {
		if alias.part.Content == "" {
			continue
		}
		id, ok := ParseParam(ctx, b, alias.part.Content, subExpression(exp, alias.part))
		if !ok {
			return nil, false
		}
		*alias.dst = id
		scope.Locals = collectBindings(b, id, scope.Locals)
	}
	return scope, true
}

// Close emits `key: _vFor(...)` onto the parent scope and returns the
// call and its key.
func (s *VForScope) Close(ctx TransformContext, b *ast.Builder) (ast.ExprID, string) {
	call := CreateVForCallExpression(b, s, ctx)
	if s.Parent == nil {
		return call, ""
	}
	return call, s.Parent.Bind(b, call)
}

func subExpression(exp *ast.SimpleExpression, part ForPart) *ast.SimpleExpression {
	loc := exp.Loc
	if !loc.IsStub() && part.Offset <= len(exp.Content) {
		loc.Start = loc.Start.Advance(exp.Content[:part.Offset])
		loc.End = loc.Start.Advance(part.Content)
		loc.Source = part.Content
	}
	return ast.NewSimpleExpression(part.Content, false, loc)
}

// collectBindings дописывает имена, которые связывает паттерн.
func collectBindings(b *ast.Builder, id ast.ExprID, out []string) []string {
	exprs := b.Exprs
	switch exprs.Kind(id) {
	case ast.ExprIdent:
		ident, _ := exprs.Ident(id)
		out = append(out, ident.Name)
	case ast.ExprAssign:
		a, _ := exprs.Assign(id)
		out = collectBindings(b, a.Target, out)
	case ast.ExprSpread:
		s, _ := exprs.Spread(id)
		out = collectBindings(b, s.Arg, out)
	case ast.ExprArray:
		arr, _ := exprs.Array(id)
		for _, el := range arr.Elems {
			out = collectBindings(b, el, out)
		}
	case ast.ExprObject:
		obj, _ := exprs.Object(id)
		for _, prop := range obj.Props {
			out = collectBindings(b, prop, out)
		}
	case ast.ExprProperty:
		p, _ := exprs.Property(id)
		out = collectBindings(b, p.Value, out)
	}
	return out
}
