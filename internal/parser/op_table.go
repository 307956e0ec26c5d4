package parser

import (
	"unikit/internal/ast"
	"unikit/internal/token"
)

const (
	precLowest      = ast.PrecLowest
	precComma       = ast.PrecComma
	precAssign      = ast.PrecAssign
	precConditional = ast.PrecConditional
	precPrefix      = ast.PrecPrefix
	precPostfix     = ast.PrecPostfix
	precCall        = ast.PrecCall
	precMember      = ast.PrecMember
)

var binaryOps = map[token.Kind]ast.ExprBinaryOp{
	token.QuestionQuestion: ast.BinNullishCoalescing,
	token.OrOr:             ast.BinLogicalOr,
	token.AndAnd:           ast.BinLogicalAnd,
	token.Pipe:             ast.BinBitOr,
	token.Caret:            ast.BinBitXor,
	token.Amp:              ast.BinBitAnd,
	token.EqEq:             ast.BinEq,
	token.BangEq:           ast.BinNotEq,
	token.EqEqEq:           ast.BinStrictEq,
	token.BangEqEq:         ast.BinStrictNotEq,
	token.Lt:               ast.BinLt,
	token.LtEq:             ast.BinLtEq,
	token.Gt:               ast.BinGt,
	token.GtEq:             ast.BinGtEq,
	token.KwIn:             ast.BinIn,
	token.KwInstanceof:     ast.BinInstanceof,
	token.Shl:              ast.BinShl,
	token.Shr:              ast.BinShr,
	token.UShr:             ast.BinUShr,
	token.Plus:             ast.BinAdd,
	token.Minus:            ast.BinSub,
	token.Star:             ast.BinMul,
	token.Slash:            ast.BinDiv,
	token.Percent:          ast.BinRem,
	token.StarStar:         ast.BinPow,
}

var unaryOps = map[token.Kind]ast.ExprUnaryOp{
	token.Plus:     ast.UnaryPlus,
	token.Minus:    ast.UnaryMinus,
	token.Bang:     ast.UnaryNot,
	token.Tilde:    ast.UnaryBitNot,
	token.KwTypeof: ast.UnaryTypeof,
	token.KwVoid:   ast.UnaryVoid,
	token.KwDelete: ast.UnaryDelete,
}

var assignOps = map[token.Kind]ast.ExprAssignOp{
	token.Assign:                 ast.AssignPlain,
	token.PlusAssign:             ast.AssignAdd,
	token.MinusAssign:            ast.AssignSub,
	token.StarAssign:             ast.AssignMul,
	token.StarStarAssign:         ast.AssignPow,
	token.SlashAssign:            ast.AssignDiv,
	token.PercentAssign:          ast.AssignRem,
	token.ShlAssign:              ast.AssignShl,
	token.ShrAssign:              ast.AssignShr,
	token.UShrAssign:             ast.AssignUShr,
	token.AmpAssign:              ast.AssignBitAnd,
	token.PipeAssign:             ast.AssignBitOr,
	token.CaretAssign:            ast.AssignBitXor,
	token.AndAndAssign:           ast.AssignLogicalAnd,
	token.OrOrAssign:             ast.AssignLogicalOr,
	token.QuestionQuestionAssign: ast.AssignNullish,
}
