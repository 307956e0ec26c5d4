package ast

import (
	"unikit/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
//
// Binding patterns reuse expression kinds, as in the host language's cover
// grammar: an object pattern is an ExprObject, an array pattern an ExprArray,
// a default value an ExprAssign with AssignPlain and a rest element an
// ExprSpread.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota + 1
	ExprThis
	// ExprLit covers string, numeric, boolean, bigint, decimal, null and
	// regexp literals; see LitKind.
	ExprLit
	ExprTemplate
	ExprArray
	ExprObject
	ExprProperty
	ExprSpread
	ExprCall
	ExprNew
	ExprMember
	ExprIndex
	ExprUnary
	ExprUpdate
	ExprBinary
	// ExprLogical is &&, || and ??. Shares payload storage with ExprBinary.
	ExprLogical
	ExprConditional
	ExprAssign
	ExprSequence
	ExprArrow
	ExprParen
)

var exprKindNames = [...]string{
	ExprIdent:       "Identifier",
	ExprThis:        "ThisExpression",
	ExprLit:         "Literal",
	ExprTemplate:    "TemplateLiteral",
	ExprArray:       "ArrayExpression",
	ExprObject:      "ObjectExpression",
	ExprProperty:    "ObjectProperty",
	ExprSpread:      "SpreadElement",
	ExprCall:        "CallExpression",
	ExprNew:         "NewExpression",
	ExprMember:      "MemberExpression",
	ExprIndex:       "IndexExpression",
	ExprUnary:       "UnaryExpression",
	ExprUpdate:      "UpdateExpression",
	ExprBinary:      "BinaryExpression",
	ExprLogical:     "LogicalExpression",
	ExprConditional: "ConditionalExpression",
	ExprAssign:      "AssignmentExpression",
	ExprSequence:    "SequenceExpression",
	ExprArrow:       "ArrowFunctionExpression",
	ExprParen:       "ParenthesizedExpression",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) && exprKindNames[k] != "" {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// Expr represents an expression node in the AST.
// Span is fragment-local; synthesized nodes carry an empty span.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}
