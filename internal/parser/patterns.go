package parser

import (
	"unikit/internal/ast"
	"unikit/internal/diag"
)

// checkSimpleTarget - цель для ++/-- и составного присваивания:
// идентификатор или обращение к полю (не опциональное).
func (p *Parser) checkSimpleTarget(id ast.ExprID) bool {
	exprs := p.arenas.Exprs
	inner := exprs.Unparen(id)
	switch exprs.Kind(inner) {
	case ast.ExprIdent:
		return true
	case ast.ExprMember:
		if m, _ := exprs.Member(inner); !m.Optional {
			return true
		}
	case ast.ExprIndex:
		if ix, _ := exprs.Index(inner); !ix.Optional {
			return true
		}
	}
	p.report(diag.SynInvalidAssignTarget, diag.SevError, p.span(id), "invalid assignment target")
	return false
}

// toPattern проверяет, что выражение, разобранное по cover grammar, является
// допустимым паттерном. binding=true для параметров стрелок (поля объектов
// там запрещены), false для деструктурирующего присваивания.
// Узлы не переписываются: паттерны используют те же виды узлов.
func (p *Parser) toPattern(id ast.ExprID, binding bool) bool {
	exprs := p.arenas.Exprs
	switch exprs.Kind(id) {
	case ast.ExprIdent:
		return true

	case ast.ExprMember, ast.ExprIndex:
		if !binding {
			return p.checkSimpleTarget(id)
		}

	case ast.ExprParen:
		if !binding {
			return p.checkSimpleTarget(id)
		}

	case ast.ExprAssign:
		a, _ := exprs.Assign(id)
		if a.Op == ast.AssignPlain {
			return p.toPattern(a.Target, binding)
		}

	case ast.ExprSpread:
		s, _ := exprs.Spread(id)
		return p.toPattern(s.Arg, binding)

	case ast.ExprArray:
		arr, _ := exprs.Array(id)
		for i, elem := range arr.Elems {
			if !elem.IsValid() {
				continue
			}
			if exprs.Kind(elem) == ast.ExprSpread && i != len(arr.Elems)-1 {
				p.report(diag.SynRestMustBeLast, diag.SevError, p.span(elem), "rest element must be last")
				return false
			}
			if !p.toPattern(elem, binding) {
				return false
			}
		}
		return true

	case ast.ExprObject:
		obj, _ := exprs.Object(id)
		for i, prop := range obj.Props {
			if s, ok := exprs.Spread(prop); ok {
				if i != len(obj.Props)-1 {
					p.report(diag.SynRestMustBeLast, diag.SevError, p.span(prop), "rest element must be last")
					return false
				}
				if exprs.Kind(s.Arg) != ast.ExprIdent {
					p.report(diag.SynInvalidPattern, diag.SevError, p.span(s.Arg), "object rest must be an identifier")
					return false
				}
				continue
			}
			pr, _ := exprs.Property(prop)
			delete(p.coverInits, prop)
			if !p.toPattern(pr.Value, binding) {
				return false
			}
		}
		return true
	}

	p.report(diag.SynInvalidPattern, diag.SevError, p.span(id), "invalid destructuring pattern")
	return false
}
