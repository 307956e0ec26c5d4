package token

import (
	"unikit/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a primitive literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, BigIntLit, DecimalLit, StringLit, NoSubstTemplate, RegexpLit,
		KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a recognised keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwTrue && t.Kind <= KwFunction
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IdentName reports whether the token may appear as a property name after
// `.` or as an object key: identifiers and every keyword.
func (t Token) IdentName() bool { return t.IsIdent() || t.IsKeyword() }

// NewlineBefore reports whether a line break precedes the token.
func (t Token) NewlineBefore() bool {
	for _, tv := range t.Leading {
		if tv.Kind == TriviaNewline {
			return true
		}
		if tv.Kind == TriviaBlockComment {
			for i := 0; i < len(tv.Text); i++ {
				if tv.Text[i] == '\n' {
					return true
				}
			}
		}
	}
	return false
}

// EndsExpression reports whether a `/` right after this token is a division
// operator rather than the start of a regular expression.
func (k Kind) EndsExpression() bool {
	switch k {
	case Ident, NumberLit, BigIntLit, DecimalLit, StringLit, NoSubstTemplate, TemplateTail,
		RegexpLit, KwTrue, KwFalse, KwNull, KwThis, RParen, RBracket, RBrace,
		PlusPlus, MinusMinus:
		return true
	}
	return false
}
