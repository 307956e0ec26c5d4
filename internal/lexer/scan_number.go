package lexer

import (
	"unikit/internal/diag"
	"unikit/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., .5, 1.0, 1e-3, суффиксы n (bigint) и m (decimal).
// Неверные формы репортятся, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumberLit
	radix := false
	fraction := false

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			digit = isHex
		case 'o', 'O':
			digit = isOct
		case 'b', 'B':
			digit = isBin
		}
		if digit != nil {
			radix = true
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !digit(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected digits after radix prefix")
			}
			if !lx.digits(digit) {
				return lx.badNumber(start, "numeric separator must sit between digits")
			}
		}
	}

	if !radix {
		if lx.cursor.Peek() != '.' && !lx.digits(isDec) {
			return lx.badNumber(start, "numeric separator must sit between digits")
		}
		if lx.cursor.Peek() == '.' {
			fraction = true
			lx.cursor.Bump()
			if isDec(lx.cursor.Peek()) && !lx.digits(isDec) {
				return lx.badNumber(start, "numeric separator must sit between digits")
			}
		}
		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			fraction = true
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected digit after exponent")
			}
			lx.digits(isDec)
		}
	}

	switch lx.cursor.Peek() {
	case 'n':
		lx.cursor.Bump()
		kind = token.BigIntLit
		if fraction {
			return lx.badNumber(start, "bigint literal must be an integer")
		}
	case 'm':
		lx.cursor.Bump()
		kind = token.DecimalLit
		if radix {
			return lx.badNumber(start, "decimal literal must be base 10")
		}
	}

	if b := lx.cursor.Peek(); isIdentStartByte(b) || isDec(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.emit(kind, start)
}

// digits consumes a run of digits with single '_' separators between them.
// Reports false when a separator is leading, trailing or doubled.
func (lx *Lexer) digits(digit func(byte) bool) bool {
	ok := true
	prevSep := true
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			prevSep = false
		case b == '_':
			if prevSep {
				ok = false
			}
			prevSep = true
		default:
			if prevSep && lx.cursor.Off > 0 && lx.file.Content[lx.cursor.Off-1] == '_' {
				ok = false
			}
			return ok
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}
