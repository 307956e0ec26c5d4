package codegen

import (
	"strconv"
	"strings"

	"unikit/internal/ast"
)

// IsTrueExpr reports the static truthiness of id. Only literals can be
// falsy; anything else is assumed truthy and left to the runtime.
func IsTrueExpr(b *ast.Builder, id ast.ExprID) bool {
	lit, ok := b.Exprs.Literal(b.Exprs.Unparen(id))
	if !ok {
		return true
	}
	switch lit.Kind {
	case ast.LitNull:
		return false
	case ast.LitString:
		return lit.Value != ""
	case ast.LitBoolean:
		return lit.Value == "true"
	case ast.LitNumeric, ast.LitBigInt, ast.LitDecimal:
		return !isZero(lit.Value)
	}
	return true
}

// isZero: значение литерала без разделителей и суффикса, в любой системе
// счисления.
func isZero(value string) bool {
	if len(value) > 1 && value[0] == '0' {
		switch value[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return strings.Trim(value[2:], "0") == ""
		}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		// переполнение: точно не ноль
		return false
	}
	return f == 0
}

// IsUndefined reports whether id is the identifier `undefined`.
func IsUndefined(b *ast.Builder, id ast.ExprID) bool {
	ident, ok := b.Exprs.Ident(b.Exprs.Unparen(id))
	return ok && ident.Name == "undefined"
}

// ParseStringLiteral turns an identifier or string into a string literal.
// Any other expression becomes ''.
func ParseStringLiteral(b *ast.Builder, id ast.ExprID) ast.ExprID {
	inner := b.Exprs.Unparen(id)
	if ident, ok := b.Exprs.Ident(inner); ok {
		return b.Exprs.NewLiteral(noSpan, ast.LitString, ident.Name)
	}
	if lit, ok := b.Exprs.Literal(inner); ok && lit.Kind == ast.LitString {
		return b.Exprs.NewLiteral(noSpan, ast.LitString, lit.Value)
	}
	return b.Exprs.NewLiteral(noSpan, ast.LitString, "")
}
