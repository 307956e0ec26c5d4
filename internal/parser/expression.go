package parser

import (
	"unikit/internal/ast"
	"unikit/internal/diag"
	"unikit/internal/token"
)

// parseExpr - главная точка входа: префикс, затем цикл суффиксов/бинарных
// операторов выше level.
func (p *Parser) parseExpr(level ast.Prec) (ast.ExprID, bool) {
	left, ok := p.parsePrefix(level)
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseSuffix(left, level)
}

// parsePrefix обрабатывает унарные операторы, префиксные ++/-- и primary.
func (p *Parser) parsePrefix(level ast.Prec) (ast.ExprID, bool) {
	tok := p.lx.Peek()

	if op, ok := unaryOps[tok.Kind]; ok {
		p.advance()
		operand, ok := p.parseExpr(precPrefix - 1)
		if !ok {
			return ast.NoExprID, false
		}
		// -a ** 2 запрещён без скобок
		if p.at(token.StarStar) {
			p.err(diag.SynUnaryBeforeExponent, "unary operator before '**' needs parentheses")
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewUnary(p.spanFrom(tok.Span), op, operand), true
	}

	if tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus {
		p.advance()
		operand, ok := p.parseExpr(precPrefix - 1)
		if !ok {
			return ast.NoExprID, false
		}
		if !p.checkSimpleTarget(operand) {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewUpdate(p.spanFrom(tok.Span), tok.Kind == token.PlusPlus, true, operand), true
	}

	return p.parsePrimary(level)
}

// parseSuffix - member/call/index цепочки, постфиксы, бинарные операторы,
// тернарный, присваивание и запятая.
func (p *Parser) parseSuffix(left ast.ExprID, level ast.Prec) (ast.ExprID, bool) {
	exprs := p.arenas.Exprs
	for {
		// стрелочная функция не продолжается ничем, кроме запятой
		if exprs.Kind(left) == ast.ExprArrow && !p.at(token.Comma) {
			return left, true
		}

		tok := p.lx.Peek()
		start := p.span(left)

		switch tok.Kind {
		case token.Dot:
			p.advance()
			name, ok := p.parsePropertyName()
			if !ok {
				return ast.NoExprID, false
			}
			left = exprs.NewMember(p.spanFrom(start), left, name, false)
			continue

		case token.QuestionDot:
			if level >= precCall {
				return left, true
			}
			p.advance()
			var ok bool
			switch {
			case p.at(token.LParen):
				var args []ast.ExprID
				if args, ok = p.parseArguments(); !ok {
					return ast.NoExprID, false
				}
				left = exprs.NewCall(p.spanFrom(start), left, args, true)
			case p.at(token.LBracket):
				p.advance()
				index, ok := p.parseExpr(precLowest)
				if !ok {
					return ast.NoExprID, false
				}
				if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
					return ast.NoExprID, false
				}
				left = exprs.NewIndex(p.spanFrom(start), left, index, true)
			default:
				name, ok := p.parsePropertyName()
				if !ok {
					return ast.NoExprID, false
				}
				left = exprs.NewMember(p.spanFrom(start), left, name, true)
			}
			continue

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr(precLowest)
			if !ok {
				return ast.NoExprID, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
				return ast.NoExprID, false
			}
			left = exprs.NewIndex(p.spanFrom(start), left, index, false)
			continue

		case token.LParen:
			if level >= precCall {
				return left, true
			}
			args, ok := p.parseArguments()
			if !ok {
				return ast.NoExprID, false
			}
			left = exprs.NewCall(p.spanFrom(start), left, args, false)
			continue

		case token.NoSubstTemplate, token.TemplateHead:
			tmpl, ok := p.parseTemplate(left)
			if !ok {
				return ast.NoExprID, false
			}
			left = tmpl
			continue

		case token.PlusPlus, token.MinusMinus:
			if tok.NewlineBefore() || level >= precPostfix {
				return left, true
			}
			if !p.checkSimpleTarget(left) {
				return ast.NoExprID, false
			}
			p.advance()
			left = exprs.NewUpdate(p.spanFrom(start), tok.Kind == token.PlusPlus, false, left)
			continue

		case token.Question:
			if level >= precConditional {
				return left, true
			}
			p.advance()
			cons, ok := p.parseExpr(precComma)
			if !ok {
				return ast.NoExprID, false
			}
			if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
				return ast.NoExprID, false
			}
			alt, ok := p.parseExpr(precComma)
			if !ok {
				return ast.NoExprID, false
			}
			left = exprs.NewConditional(p.spanFrom(start), left, cons, alt)
			continue

		case token.Comma:
			if level >= precComma {
				return left, true
			}
			items := []ast.ExprID{left}
			for p.at(token.Comma) {
				p.advance()
				next, ok := p.parseExpr(precComma)
				if !ok {
					return ast.NoExprID, false
				}
				items = append(items, next)
			}
			left = exprs.NewSequence(p.spanFrom(start), items)
			continue
		}

		if op, ok := assignOps[tok.Kind]; ok {
			if level >= precAssign {
				return left, true
			}
			if op == ast.AssignPlain {
				if !p.toPattern(left, false) {
					return ast.NoExprID, false
				}
			} else if !p.checkSimpleTarget(left) {
				return ast.NoExprID, false
			}
			p.advance()
			value, ok := p.parseExpr(precAssign - 1)
			if !ok {
				return ast.NoExprID, false
			}
			left = exprs.NewAssign(p.spanFrom(start), op, left, value)
			continue
		}

		if op, ok := binaryOps[tok.Kind]; ok {
			prec := op.Prec()
			if level >= prec {
				return left, true
			}
			p.advance()
			next := prec
			if op.RightAssoc() {
				next = prec - 1
			}
			right, ok := p.parseExpr(next)
			if !ok {
				return ast.NoExprID, false
			}
			if !p.checkCoalesceMix(op, left, right) {
				return ast.NoExprID, false
			}
			left = exprs.NewBinary(p.spanFrom(start), op, left, right)
			continue
		}

		return left, true
	}
}

// checkCoalesceMix запрещает `a ?? b || c` и `a || b ?? c` без скобок.
func (p *Parser) checkCoalesceMix(op ast.ExprBinaryOp, operands ...ast.ExprID) bool {
	if !op.IsLogical() {
		return true
	}
	for _, id := range operands {
		bin, ok := p.arenas.Exprs.Binary(id)
		if !ok || !bin.Op.IsLogical() {
			continue
		}
		mixed := (op == ast.BinNullishCoalescing) != (bin.Op == ast.BinNullishCoalescing)
		if mixed {
			p.report(diag.SynMixedCoalesce, diag.SevError, p.span(id),
				"'??' cannot be mixed with '||' or '&&' without parentheses")
			return false
		}
	}
	return true
}

// parseArguments разбирает `(a, ...b, c)`; текущий токен - '('.
func (p *Parser) parseArguments() ([]ast.ExprID, bool) {
	p.advance()
	var args []ast.ExprID
	for !p.at(token.RParen) {
		var (
			arg ast.ExprID
			ok  bool
		)
		if p.at(token.DotDotDot) {
			spread := p.advance()
			if arg, ok = p.parseExpr(precComma); ok {
				arg = p.arenas.Exprs.NewSpread(p.spanFrom(spread.Span), arg)
			}
		} else {
			arg, ok = p.parseExpr(precComma)
		}
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments"); !ok {
		return nil, false
	}
	return args, true
}

// parsePropertyName - имя после '.' или '?.'; ключевые слова допустимы.
func (p *Parser) parsePropertyName() (string, bool) {
	tok := p.lx.Peek()
	if !tok.IdentName() {
		p.err(diag.SynExpectIdentifier, "expected property name, got "+describe(tok))
		return "", false
	}
	p.advance()
	return identName(tok.Text), true
}
