package parser

import (
	"unikit/internal/ast"
	"unikit/internal/diag"
	"unikit/internal/source"
	"unikit/internal/token"
)

// parsePrimary разбирает атомы: идентификаторы, литералы, скобки/стрелки,
// массивы, объекты, шаблоны и new.
func (p *Parser) parsePrimary(level ast.Prec) (ast.ExprID, bool) {
	exprs := p.arenas.Exprs
	tok := p.lx.Peek()

	switch tok.Kind {
	case token.Ident:
		p.advance()
		if p.at(token.Arrow) && !p.lx.Peek().NewlineBefore() {
			param := exprs.NewIdent(tok.Span, identName(tok.Text))
			return p.parseArrowBody(tok.Span, []ast.ExprID{param}, level)
		}
		return exprs.NewIdent(tok.Span, identName(tok.Text)), true

	case token.KwThis:
		p.advance()
		return exprs.NewThis(tok.Span), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return exprs.NewLiteral(tok.Span, ast.LitBoolean, tok.Text), true

	case token.KwNull:
		p.advance()
		return exprs.NewLiteral(tok.Span, ast.LitNull, "null"), true

	case token.NumberLit:
		p.advance()
		return exprs.NewLiteral(tok.Span, ast.LitNumeric, numericValue(tok.Text)), true

	case token.BigIntLit:
		p.advance()
		return exprs.NewLiteral(tok.Span, ast.LitBigInt, numericValue(tok.Text)), true

	case token.DecimalLit:
		p.advance()
		return exprs.NewLiteral(tok.Span, ast.LitDecimal, numericValue(tok.Text)), true

	case token.StringLit:
		p.advance()
		value, ok := decodeString(tok.Text[1 : len(tok.Text)-1])
		if !ok {
			p.report(diag.LexBadEscape, diag.SevError, tok.Span, "invalid escape sequence in string literal")
			return ast.NoExprID, false
		}
		return exprs.NewLiteral(tok.Span, ast.LitString, value), true

	case token.RegexpLit:
		p.advance()
		pattern, flags := splitRegexp(tok.Text)
		return exprs.NewRegexp(tok.Span, pattern, flags), true

	case token.NoSubstTemplate, token.TemplateHead:
		return p.parseTemplate(ast.NoExprID)

	case token.LParen:
		return p.parseParenOrArrow(level)

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.LBrace:
		return p.parseObjectLiteral()

	case token.KwNew:
		return p.parseNew()

	case token.KwFunction:
		p.err(diag.SynUnsupportedStatement, "function expressions are not supported, use an arrow function")
		return ast.NoExprID, false

	case token.Invalid:
		// лексер уже отрепортил
		p.advance()
		return ast.NoExprID, false
	}

	p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
	return ast.NoExprID, false
}

// parseParenOrArrow - cover grammar: `(a, b)` либо `(a, b) => ...`.
func (p *Parser) parseParenOrArrow(level ast.Prec) (ast.ExprID, bool) {
	exprs := p.arenas.Exprs
	open := p.advance()

	var (
		items    []ast.ExprID
		rest     source.Span
		hasRest  bool
		trailing bool
	)
	for !p.at(token.RParen) {
		if hasRest {
			p.report(diag.SynRestMustBeLast, diag.SevError, rest, "rest parameter must be last")
			return ast.NoExprID, false
		}
		if p.at(token.DotDotDot) {
			dots := p.advance()
			arg, ok := p.parseExpr(precComma)
			if !ok {
				return ast.NoExprID, false
			}
			rest = p.spanFrom(dots.Span)
			hasRest = true
			items = append(items, exprs.NewSpread(rest, arg))
		} else {
			item, ok := p.parseExpr(precComma)
			if !ok {
				return ast.NoExprID, false
			}
			items = append(items, item)
		}
		trailing = false
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		trailing = true
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return ast.NoExprID, false
	}

	if p.at(token.Arrow) && !p.lx.Peek().NewlineBefore() {
		for _, item := range items {
			if !p.toPattern(item, true) {
				return ast.NoExprID, false
			}
		}
		return p.parseArrowBody(open.Span, items, level)
	}

	switch {
	case len(items) == 0:
		p.err(diag.SynExpectArrow, "expected '=>' after '()'")
		return ast.NoExprID, false
	case hasRest:
		p.report(diag.SynExpectArrow, diag.SevError, rest, "spread in parentheses is only valid in arrow parameters")
		return ast.NoExprID, false
	case trailing:
		p.err(diag.SynExpectArrow, "trailing comma in parentheses is only valid in arrow parameters")
		return ast.NoExprID, false
	}

	inner := items[0]
	if len(items) > 1 {
		inner = exprs.NewSequence(p.span(items[0]).Cover(p.span(items[len(items)-1])), items)
	}
	return exprs.NewParen(p.spanFrom(open.Span), inner), true
}

// parseArrowBody: текущий токен '=>'. Блочное тело допускает только
// пустой блок или единственный `return expr`.
func (p *Parser) parseArrowBody(start source.Span, params []ast.ExprID, level ast.Prec) (ast.ExprID, bool) {
	exprs := p.arenas.Exprs
	if level >= precAssign {
		p.err(diag.SynUnexpectedToken, "arrow function must be parenthesized here")
		return ast.NoExprID, false
	}
	p.advance() // =>

	if !p.at(token.LBrace) {
		body, ok := p.parseExpr(precComma)
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewArrow(p.spanFrom(start), params, body, false), true
	}

	p.advance() // {
	body := ast.NoExprID
	if p.at(token.KwReturn) {
		p.advance()
		if !p.atOr(token.Semicolon, token.RBrace) {
			var ok bool
			if body, ok = p.parseExpr(precLowest); !ok {
				return ast.NoExprID, false
			}
		}
		if p.at(token.Semicolon) {
			p.advance()
		}
	}
	if !p.at(token.RBrace) {
		p.err(diag.SynUnsupportedStatement, "only 'return <expression>' is supported in arrow function bodies")
		return ast.NoExprID, false
	}
	p.advance()
	return exprs.NewArrow(p.spanFrom(start), params, body, true), true
}

func (p *Parser) parseArrayLiteral() (ast.ExprID, bool) {
	open := p.advance()
	var elems []ast.ExprID
	for !p.at(token.RBracket) {
		if p.at(token.Comma) {
			p.advance()
			elems = append(elems, ast.NoExprID) // дырка
			continue
		}
		var (
			elem ast.ExprID
			ok   bool
		)
		if p.at(token.DotDotDot) {
			dots := p.advance()
			if elem, ok = p.parseExpr(precComma); ok {
				elem = p.arenas.Exprs.NewSpread(p.spanFrom(dots.Span), elem)
			}
		} else {
			elem, ok = p.parseExpr(precComma)
		}
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, elem)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(p.spanFrom(open.Span), elems), true
}

func (p *Parser) parseObjectLiteral() (ast.ExprID, bool) {
	exprs := p.arenas.Exprs
	open := p.advance()
	var props []ast.ExprID
	for !p.at(token.RBrace) {
		prop, ok := p.parseObjectMember()
		if !ok {
			return ast.NoExprID, false
		}
		props = append(props, prop)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'"); !ok {
		return ast.NoExprID, false
	}
	return exprs.NewObject(p.spanFrom(open.Span), props), true
}

func (p *Parser) parseObjectMember() (ast.ExprID, bool) {
	exprs := p.arenas.Exprs
	tok := p.lx.Peek()

	if tok.Kind == token.DotDotDot {
		p.advance()
		arg, ok := p.parseExpr(precComma)
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewSpread(p.spanFrom(tok.Span), arg), true
	}

	var (
		key      ast.ExprID
		computed bool
	)
	switch {
	case tok.Kind == token.LBracket:
		p.advance()
		k, ok := p.parseExpr(precComma)
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key"); !ok {
			return ast.NoExprID, false
		}
		key, computed = k, true
	case tok.IdentName():
		p.advance()
		key = exprs.NewIdent(tok.Span, identName(tok.Text))
	case tok.Kind == token.StringLit, tok.Kind == token.NumberLit, tok.Kind == token.BigIntLit:
		k, ok := p.parsePrimary(precMember)
		if !ok {
			return ast.NoExprID, false
		}
		key = k
	default:
		p.err(diag.SynExpectIdentifier, "expected property name, got "+describe(tok))
		return ast.NoExprID, false
	}

	if p.at(token.Colon) {
		p.advance()
		value, ok := p.parseExpr(precComma)
		if !ok {
			return ast.NoExprID, false
		}
		return exprs.NewProperty(p.spanFrom(tok.Span), key, value, computed, false), true
	}

	if p.at(token.LParen) {
		p.err(diag.SynUnsupportedStatement, "object methods are not supported, use an arrow function")
		return ast.NoExprID, false
	}

	// shorthand `{a}` / `{a = 1}` только для обычных идентификаторов
	if computed || tok.Kind != token.Ident {
		p.err(diag.SynExpectColon, "expected ':' after property name")
		return ast.NoExprID, false
	}
	value := exprs.NewIdent(tok.Span, identName(tok.Text))
	coverInit := false
	if p.at(token.Assign) {
		p.advance()
		def, ok := p.parseExpr(precComma)
		if !ok {
			return ast.NoExprID, false
		}
		value = exprs.NewAssign(p.spanFrom(tok.Span), ast.AssignPlain, value, def)
		coverInit = true
	}
	prop := exprs.NewProperty(p.spanFrom(tok.Span), key, value, false, true)
	if coverInit {
		if p.coverInits == nil {
			p.coverInits = make(map[ast.ExprID]source.Span)
		}
		p.coverInits[prop] = p.span(prop)
	}
	return prop, true
}

// parseTemplate разбирает шаблонную строку; tag - NoExprID для обычной.
func (p *Parser) parseTemplate(tag ast.ExprID) (ast.ExprID, bool) {
	first := p.advance()
	start := first.Span
	if tag.IsValid() {
		start = p.span(tag)
	}
	if first.Kind == token.NoSubstTemplate {
		quasi := first.Text[1 : len(first.Text)-1]
		return p.arenas.Exprs.NewTemplate(p.spanFrom(start), tag, []string{quasi}, nil), true
	}

	quasis := []string{first.Text[1 : len(first.Text)-2]}
	var subs []ast.ExprID
	for {
		sub, ok := p.parseExpr(precLowest)
		if !ok {
			return ast.NoExprID, false
		}
		subs = append(subs, sub)
		next := p.lx.Peek()
		switch next.Kind {
		case token.TemplateMiddle:
			p.advance()
			quasis = append(quasis, next.Text[1:len(next.Text)-2])
			continue
		case token.TemplateTail:
			p.advance()
			quasis = append(quasis, next.Text[1:len(next.Text)-1])
			return p.arenas.Exprs.NewTemplate(p.spanFrom(start), tag, quasis, subs), true
		}
		p.err(diag.SynTemplateUnclosedSubst, "expected '}' to close template substitution")
		return ast.NoExprID, false
	}
}

// parseNew: `new Callee(args)` или `new Callee`.
func (p *Parser) parseNew() (ast.ExprID, bool) {
	kw := p.advance()
	callee, ok := p.parseExpr(precMember)
	if !ok {
		return ast.NoExprID, false
	}
	var args []ast.ExprID
	if p.at(token.LParen) {
		if args, ok = p.parseArguments(); !ok {
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewNew(p.spanFrom(kw.Span), callee, args), true
}
