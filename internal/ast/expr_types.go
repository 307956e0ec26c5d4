package ast

// LitKind discriminates ExprLit payloads.
type LitKind uint8

const (
	LitString LitKind = iota
	LitNumeric
	LitBoolean
	LitBigInt
	LitDecimal
	LitNull
	LitRegexp
)

func (k LitKind) String() string {
	switch k {
	case LitString:
		return "StringLiteral"
	case LitNumeric:
		return "NumericLiteral"
	case LitBoolean:
		return "BooleanLiteral"
	case LitBigInt:
		return "BigIntLiteral"
	case LitDecimal:
		return "DecimalLiteral"
	case LitNull:
		return "NullLiteral"
	case LitRegexp:
		return "RegExpLiteral"
	}
	return "Literal(?)"
}

// ExprLitData holds a literal.
//   - LitString: Value is the decoded string.
//   - LitNumeric, LitBigInt, LitDecimal: Value is the source text without
//     separators or suffix (`1_000n` → `1000`).
//   - LitBoolean: Value is "true" or "false".
//   - LitRegexp: Value is the pattern, Flags the flags.
type ExprLitData struct {
	Kind  LitKind
	Value string
	Flags string
}

type ExprIdentData struct {
	Name string
}

// ExprTemplateData: len(Quasis) == len(Exprs)+1. Quasis are raw (undecoded).
type ExprTemplateData struct {
	Tag    ExprID
	Quasis []string
	Exprs  []ExprID
}

// ExprArrayData: NoExprID marks a hole.
type ExprArrayData struct {
	Elems []ExprID
}

// ExprObjectData: each entry is an ExprProperty or an ExprSpread.
type ExprObjectData struct {
	Props []ExprID
}

type ExprPropertyData struct {
	Key       ExprID
	Value     ExprID
	Computed  bool
	Shorthand bool
}

type ExprSpreadData struct {
	Arg ExprID
}

type ExprCallData struct {
	Callee   ExprID
	Args     []ExprID
	Optional bool // callee?.(...)
}

type ExprMemberData struct {
	Object   ExprID
	Name     string
	Optional bool
}

type ExprIndexData struct {
	Object   ExprID
	Index    ExprID
	Optional bool
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	UnaryPlus ExprUnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryBitNot
	UnaryTypeof
	UnaryVoid
	UnaryDelete
)

var unaryOpText = [...]string{
	UnaryPlus:   "+",
	UnaryMinus:  "-",
	UnaryNot:    "!",
	UnaryBitNot: "~",
	UnaryTypeof: "typeof",
	UnaryVoid:   "void",
	UnaryDelete: "delete",
}

func (op ExprUnaryOp) String() string { return unaryOpText[op] }

// IsKeyword reports whether the operator is spelled as a word.
func (op ExprUnaryOp) IsKeyword() bool { return op >= UnaryTypeof }

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprUpdateData struct {
	Increment bool
	Prefix    bool
	Operand   ExprID
}

// ExprBinaryOp enumerates binary and logical operator kinds.
type ExprBinaryOp uint8

const (
	BinAdd ExprBinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinRem
	BinPow
	BinShl
	BinShr
	BinUShr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinEq
	BinNotEq
	BinStrictEq
	BinStrictNotEq
	BinLt
	BinLtEq
	BinGt
	BinGtEq
	BinIn
	BinInstanceof
	BinLogicalAnd
	BinLogicalOr
	BinNullishCoalescing
)

var binaryOpText = [...]string{
	BinAdd:               "+",
	BinSub:               "-",
	BinMul:               "*",
	BinDiv:               "/",
	BinRem:               "%",
	BinPow:               "**",
	BinShl:               "<<",
	BinShr:               ">>",
	BinUShr:              ">>>",
	BinBitAnd:            "&",
	BinBitOr:             "|",
	BinBitXor:            "^",
	BinEq:                "==",
	BinNotEq:             "!=",
	BinStrictEq:          "===",
	BinStrictNotEq:       "!==",
	BinLt:                "<",
	BinLtEq:              "<=",
	BinGt:                ">",
	BinGtEq:              ">=",
	BinIn:                "in",
	BinInstanceof:        "instanceof",
	BinLogicalAnd:        "&&",
	BinLogicalOr:         "||",
	BinNullishCoalescing: "??",
}

func (op ExprBinaryOp) String() string { return binaryOpText[op] }

// IsLogical reports whether op short-circuits.
func (op ExprBinaryOp) IsLogical() bool { return op >= BinLogicalAnd }

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprConditionalData struct {
	Test ExprID
	Cons ExprID
	Alt  ExprID
}

// ExprAssignOp enumerates `=` and compound assignments.
type ExprAssignOp uint8

const (
	AssignPlain ExprAssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignPow
	AssignDiv
	AssignRem
	AssignShl
	AssignShr
	AssignUShr
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignLogicalAnd
	AssignLogicalOr
	AssignNullish
)

var assignOpText = [...]string{
	AssignPlain:      "=",
	AssignAdd:        "+=",
	AssignSub:        "-=",
	AssignMul:        "*=",
	AssignPow:        "**=",
	AssignDiv:        "/=",
	AssignRem:        "%=",
	AssignShl:        "<<=",
	AssignShr:        ">>=",
	AssignUShr:       ">>>=",
	AssignBitAnd:     "&=",
	AssignBitOr:      "|=",
	AssignBitXor:     "^=",
	AssignLogicalAnd: "&&=",
	AssignLogicalOr:  "||=",
	AssignNullish:    "??=",
}

func (op ExprAssignOp) String() string { return assignOpText[op] }

type ExprAssignData struct {
	Op     ExprAssignOp
	Target ExprID
	Value  ExprID
}

type ExprSequenceData struct {
	Exprs []ExprID
}

// ExprArrowData: when Block is set the body is `{ return Body; }`, or `{}`
// if Body is NoExprID. Otherwise Body is the concise expression body.
type ExprArrowData struct {
	Params []ExprID
	Body   ExprID
	Block  bool
}

type ExprParenData struct {
	Inner ExprID
}
