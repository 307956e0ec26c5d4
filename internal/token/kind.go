package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the fragment.
	EOF

	// Ident represents an identifier token.
	Ident

	// NumberLit is a numeric literal in any radix.
	NumberLit
	// BigIntLit is an integer literal with the `n` suffix.
	BigIntLit
	// DecimalLit is a numeric literal with the `m` suffix.
	DecimalLit
	// StringLit is a single or double quoted string.
	StringLit
	// NoSubstTemplate is a template literal without `${`.
	NoSubstTemplate
	TemplateHead   // `...${
	TemplateMiddle // }...${
	TemplateTail   // }...`
	RegexpLit      // /.../flags

	KwTrue
	KwFalse
	KwNull
	KwThis
	KwNew
	KwTypeof
	KwVoid
	KwDelete
	KwIn
	KwInstanceof
	KwReturn
	KwFunction

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	Dot      // .
	DotDotDot
	QuestionDot // ?.
	Comma
	Colon
	Semicolon
	Question
	Arrow // =>

	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	PlusPlus
	MinusMinus
	Lt
	LtEq
	Gt
	GtEq
	EqEq
	BangEq
	EqEqEq
	BangEqEq
	Shl
	Shr
	UShr
	Amp
	Pipe
	Caret
	Tilde
	Bang
	AndAnd
	OrOr
	QuestionQuestion

	Assign
	PlusAssign
	MinusAssign
	StarAssign
	StarStarAssign
	SlashAssign
	PercentAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	AndAndAssign
	OrOrAssign
	QuestionQuestionAssign
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Ident:                  "Ident",
	NumberLit:              "NumberLit",
	BigIntLit:              "BigIntLit",
	DecimalLit:             "DecimalLit",
	StringLit:              "StringLit",
	NoSubstTemplate:        "NoSubstTemplate",
	TemplateHead:           "TemplateHead",
	TemplateMiddle:         "TemplateMiddle",
	TemplateTail:           "TemplateTail",
	RegexpLit:              "RegexpLit",
	KwTrue:                 "true",
	KwFalse:                "false",
	KwNull:                 "null",
	KwThis:                 "this",
	KwNew:                  "new",
	KwTypeof:               "typeof",
	KwVoid:                 "void",
	KwDelete:               "delete",
	KwIn:                   "in",
	KwInstanceof:           "instanceof",
	KwReturn:               "return",
	KwFunction:             "function",
	LParen:                 "(",
	RParen:                 ")",
	LBrace:                 "{",
	RBrace:                 "}",
	LBracket:               "[",
	RBracket:               "]",
	Dot:                    ".",
	DotDotDot:              "...",
	QuestionDot:            "?.",
	Comma:                  ",",
	Colon:                  ":",
	Semicolon:              ";",
	Question:               "?",
	Arrow:                  "=>",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	StarStar:               "**",
	Slash:                  "/",
	Percent:                "%",
	PlusPlus:               "++",
	MinusMinus:             "--",
	Lt:                     "<",
	LtEq:                   "<=",
	Gt:                     ">",
	GtEq:                   ">=",
	EqEq:                   "==",
	BangEq:                 "!=",
	EqEqEq:                 "===",
	BangEqEq:               "!==",
	Shl:                    "<<",
	Shr:                    ">>",
	UShr:                   ">>>",
	Amp:                    "&",
	Pipe:                   "|",
	Caret:                  "^",
	Tilde:                  "~",
	Bang:                   "!",
	AndAnd:                 "&&",
	OrOr:                   "||",
	QuestionQuestion:       "??",
	Assign:                 "=",
	PlusAssign:             "+=",
	MinusAssign:            "-=",
	StarAssign:             "*=",
	StarStarAssign:         "**=",
	SlashAssign:            "/=",
	PercentAssign:          "%=",
	ShlAssign:              "<<=",
	ShrAssign:              ">>=",
	UShrAssign:             ">>>=",
	AmpAssign:              "&=",
	PipeAssign:             "|=",
	CaretAssign:            "^=",
	AndAndAssign:           "&&=",
	OrOrAssign:             "||=",
	QuestionQuestionAssign: "??=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsAssign reports whether k is `=` or a compound assignment.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= QuestionQuestionAssign
}
