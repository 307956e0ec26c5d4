package printer

import (
	"strings"

	"unikit/internal/ast"
)

type printer struct {
	exprs  *ast.Exprs
	writer *Writer
}

// Expr renders id. Unknown ids print as nothing.
func Expr(b *ast.Builder, id ast.ExprID) string {
	if b == nil {
		return ""
	}
	p := printer{exprs: b.Exprs, writer: NewWriter(64)}
	p.printExpr(id, ast.PrecLowest)
	return p.writer.String()
}

func (p *printer) write(s string) { p.writer.WriteString(s) }

func (p *printer) wrap(cond bool, body func()) {
	if cond {
		p.write("(")
	}
	body()
	if cond {
		p.write(")")
	}
}

// printExpr печатает id так, чтобы он связывался сильнее level.
func (p *printer) printExpr(id ast.ExprID, level ast.Prec) {
	expr := p.exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
		d, _ := p.exprs.Ident(id)
		p.write(d.Name)
	case ast.ExprThis:
		p.write("this")
	case ast.ExprLit:
		d, _ := p.exprs.Literal(id)
		p.printLiteral(d)
	case ast.ExprTemplate:
		p.printTemplate(id)
	case ast.ExprArray:
		p.printArray(id)
	case ast.ExprObject:
		p.printObject(id)
	case ast.ExprProperty:
		p.printProperty(id)
	case ast.ExprSpread:
		d, _ := p.exprs.Spread(id)
		p.write("...")
		p.printExpr(d.Arg, ast.PrecComma)
	case ast.ExprCall, ast.ExprNew:
		p.printCall(id, expr.Kind)
	case ast.ExprMember:
		d, _ := p.exprs.Member(id)
		p.printTarget(d.Object)
		if d.Optional {
			p.write("?.")
		} else {
			p.write(".")
		}
		p.write(d.Name)
	case ast.ExprIndex:
		d, _ := p.exprs.Index(id)
		p.printTarget(d.Object)
		if d.Optional {
			p.write("?.")
		}
		p.write("[")
		p.printExpr(d.Index, ast.PrecLowest)
		p.write("]")
	case ast.ExprUnary:
		p.printUnary(id, level)
	case ast.ExprUpdate:
		p.printUpdate(id, level)
	case ast.ExprBinary, ast.ExprLogical:
		p.printBinary(id, level)
	case ast.ExprConditional:
		d, _ := p.exprs.Conditional(id)
		p.wrap(level >= ast.PrecConditional, func() {
			p.printExpr(d.Test, ast.PrecConditional)
			p.write(" ? ")
			p.printExpr(d.Cons, ast.PrecComma)
			p.write(" : ")
			p.printExpr(d.Alt, ast.PrecComma)
		})
	case ast.ExprAssign:
		d, _ := p.exprs.Assign(id)
		p.wrap(level >= ast.PrecAssign, func() {
			p.printExpr(d.Target, ast.PrecAssign)
			p.write(" " + d.Op.String() + " ")
			p.printExpr(d.Value, ast.PrecAssign-1)
		})
	case ast.ExprSequence:
		d, _ := p.exprs.Sequence(id)
		p.wrap(level >= ast.PrecComma, func() {
			for i, item := range d.Exprs {
				if i > 0 {
					p.write(", ")
				}
				p.printExpr(item, ast.PrecComma)
			}
		})
	case ast.ExprArrow:
		p.wrap(level >= ast.PrecAssign, func() { p.printArrow(id) })
	case ast.ExprParen:
		d, _ := p.exprs.Paren(id)
		p.write("(")
		p.printExpr(d.Inner, ast.PrecLowest)
		p.write(")")
	}
}

// printTarget печатает объект member/call/index-цепочки. Целые числа
// оборачиваются, чтобы `.` не стала десятичной точкой.
func (p *printer) printTarget(id ast.ExprID) {
	if lit, ok := p.exprs.Literal(id); ok && lit.Kind == ast.LitNumeric &&
		!strings.ContainsAny(lit.Value, ".eExXoObB") {
		p.wrap(true, func() { p.printExpr(id, ast.PrecLowest) })
		return
	}
	p.printExpr(id, ast.PrecPostfix)
}

func (p *printer) printCall(id ast.ExprID, kind ast.ExprKind) {
	d, _ := p.exprs.Call(id)
	if kind == ast.ExprNew {
		p.write("new ")
		p.wrap(p.hasCall(d.Callee), func() { p.printExpr(d.Callee, ast.PrecNew) })
		p.printArgs(d.Args)
		return
	}
	p.printTarget(d.Callee)
	if d.Optional {
		p.write("?.")
	}
	p.printArgs(d.Args)
}

func (p *printer) printArgs(args []ast.ExprID) {
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(arg, ast.PrecComma)
	}
	p.write(")")
}

// hasCall reports whether a `new` callee would swallow a call's parentheses.
func (p *printer) hasCall(id ast.ExprID) bool {
	for {
		switch p.exprs.Kind(id) {
		case ast.ExprCall:
			return true
		case ast.ExprMember:
			m, _ := p.exprs.Member(id)
			id = m.Object
		case ast.ExprIndex:
			ix, _ := p.exprs.Index(id)
			id = ix.Object
		default:
			return false
		}
	}
}

func (p *printer) printUnary(id ast.ExprID, level ast.Prec) {
	d, _ := p.exprs.Unary(id)
	p.wrap(level >= ast.PrecPrefix, func() {
		p.write(d.Op.String())
		if d.Op.IsKeyword() || p.startsWithSign(d.Operand, d.Op) {
			p.write(" ")
		}
		p.printExpr(d.Operand, ast.PrecPrefix-1)
	})
}

// startsWithSign - `- -x` и `+ ++x` нельзя склеивать.
func (p *printer) startsWithSign(operand ast.ExprID, op ast.ExprUnaryOp) bool {
	if op != ast.UnaryPlus && op != ast.UnaryMinus {
		return false
	}
	if u, ok := p.exprs.Unary(operand); ok {
		return u.Op == op
	}
	if u, ok := p.exprs.Update(operand); ok && u.Prefix {
		return u.Increment == (op == ast.UnaryPlus)
	}
	return false
}

func (p *printer) printUpdate(id ast.ExprID, level ast.Prec) {
	d, _ := p.exprs.Update(id)
	op := "--"
	if d.Increment {
		op = "++"
	}
	if d.Prefix {
		p.wrap(level >= ast.PrecPrefix, func() {
			p.write(op)
			p.printExpr(d.Operand, ast.PrecPrefix-1)
		})
		return
	}
	p.wrap(level >= ast.PrecPostfix, func() {
		p.printExpr(d.Operand, ast.PrecPostfix-1)
		p.write(op)
	})
}

func (p *printer) printBinary(id ast.ExprID, level ast.Prec) {
	d, _ := p.exprs.Binary(id)
	prec := d.Op.Prec()
	leftLevel, rightLevel := prec-1, prec
	if d.Op.RightAssoc() {
		leftLevel, rightLevel = prec, prec-1
		// -a ** b
		if k := p.exprs.Kind(d.Left); k == ast.ExprUnary {
			leftLevel = ast.PrecPrefix
		}
	}
	p.wrap(level >= prec, func() {
		p.wrap(p.mixesCoalesce(d.Op, d.Left), func() { p.printExpr(d.Left, leftLevel) })
		p.write(" " + d.Op.String() + " ")
		p.wrap(p.mixesCoalesce(d.Op, d.Right), func() { p.printExpr(d.Right, rightLevel) })
	})
}

func (p *printer) mixesCoalesce(op ast.ExprBinaryOp, operand ast.ExprID) bool {
	if !op.IsLogical() {
		return false
	}
	inner, ok := p.exprs.Binary(operand)
	if !ok || !inner.Op.IsLogical() {
		return false
	}
	return (op == ast.BinNullishCoalescing) != (inner.Op == ast.BinNullishCoalescing)
}

func (p *printer) printArrow(id ast.ExprID) {
	d, _ := p.exprs.Arrow(id)
	if len(d.Params) == 1 && p.exprs.Kind(d.Params[0]) == ast.ExprIdent {
		p.printExpr(d.Params[0], ast.PrecComma)
	} else {
		p.write("(")
		for i, param := range d.Params {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(param, ast.PrecComma)
		}
		p.write(")")
	}
	p.write(" => ")
	if d.Block {
		if !d.Body.IsValid() {
			p.write("{}")
			return
		}
		p.write("{ return ")
		p.printExpr(d.Body, ast.PrecLowest)
		p.write("; }")
		return
	}
	p.wrap(p.exprs.Kind(d.Body) == ast.ExprObject, func() { p.printExpr(d.Body, ast.PrecComma) })
}

func (p *printer) printArray(id ast.ExprID) {
	d, _ := p.exprs.Array(id)
	p.write("[")
	for i, elem := range d.Elems {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(elem, ast.PrecComma)
	}
	if n := len(d.Elems); n > 0 && !d.Elems[n-1].IsValid() {
		p.write(",")
	}
	p.write("]")
}

func (p *printer) printObject(id ast.ExprID) {
	d, _ := p.exprs.Object(id)
	if len(d.Props) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, prop := range d.Props {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(prop, ast.PrecComma)
	}
	p.write(" }")
}

func (p *printer) printProperty(id ast.ExprID) {
	d, _ := p.exprs.Property(id)
	if d.Shorthand {
		p.printExpr(d.Value, ast.PrecComma)
		return
	}
	if d.Computed {
		p.write("[")
		p.printExpr(d.Key, ast.PrecComma)
		p.write("]")
	} else {
		p.printExpr(d.Key, ast.PrecComma)
	}
	p.write(": ")
	p.printExpr(d.Value, ast.PrecComma)
}

func (p *printer) printTemplate(id ast.ExprID) {
	d, _ := p.exprs.Template(id)
	if d.Tag.IsValid() {
		p.printTarget(d.Tag)
	}
	p.write("`")
	for i, quasi := range d.Quasis {
		p.write(quasi)
		if i < len(d.Exprs) {
			p.write("${")
			p.printExpr(d.Exprs[i], ast.PrecLowest)
			p.write("}")
		}
	}
	p.write("`")
}

func (p *printer) printLiteral(d *ast.ExprLitData) {
	switch d.Kind {
	case ast.LitString:
		p.write(Quote(d.Value))
	case ast.LitBigInt:
		p.write(d.Value + "n")
	case ast.LitDecimal:
		p.write(d.Value + "m")
	case ast.LitRegexp:
		p.write("/" + d.Value + "/" + d.Flags)
	default:
		p.write(d.Value)
	}
}
