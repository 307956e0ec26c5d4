package ast

// Prec is an operator precedence level, lowest first. An expression parsed
// at level L absorbs only operators strictly above L.
type Prec uint8

const (
	PrecLowest Prec = iota
	PrecComma
	PrecSpread
	PrecAssign
	PrecConditional
	PrecNullish
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitwiseOr
	PrecBitwiseXor
	PrecBitwiseAnd
	PrecEquals
	PrecCompare
	PrecShift
	PrecAdd
	PrecMultiply
	PrecExponent
	PrecPrefix
	PrecPostfix
	PrecNew
	PrecCall
	PrecMember
)

var binaryPrec = [...]Prec{
	BinAdd:               PrecAdd,
	BinSub:               PrecAdd,
	BinMul:               PrecMultiply,
	BinDiv:               PrecMultiply,
	BinRem:               PrecMultiply,
	BinPow:               PrecExponent,
	BinShl:               PrecShift,
	BinShr:               PrecShift,
	BinUShr:              PrecShift,
	BinBitAnd:            PrecBitwiseAnd,
	BinBitOr:             PrecBitwiseOr,
	BinBitXor:            PrecBitwiseXor,
	BinEq:                PrecEquals,
	BinNotEq:             PrecEquals,
	BinStrictEq:          PrecEquals,
	BinStrictNotEq:       PrecEquals,
	BinLt:                PrecCompare,
	BinLtEq:              PrecCompare,
	BinGt:                PrecCompare,
	BinGtEq:              PrecCompare,
	BinIn:                PrecCompare,
	BinInstanceof:        PrecCompare,
	BinLogicalAnd:        PrecLogicalAnd,
	BinLogicalOr:         PrecLogicalOr,
	BinNullishCoalescing: PrecNullish,
}

// Prec returns the precedence of op.
func (op ExprBinaryOp) Prec() Prec { return binaryPrec[op] }

// RightAssoc reports whether op groups to the right (only `**`).
func (op ExprBinaryOp) RightAssoc() bool { return op == BinPow }
