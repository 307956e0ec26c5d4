package lexer

import (
	"unikit/internal/diag"
	"unikit/internal/token"
)

// scanString читает строку в одинарных или двойных кавычках. Escape-последовательности
// только пропускаются; декодирует их парсер.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			// "\\\r\n" уже нормализован в "\\\n" - продолжение строки
			lx.cursor.Bump()
			continue
		}
		if isLineTerminator(b) {
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "newline in string literal")
			return tok
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanTemplate continues a template literal after '`' (head) or after the '}'
// closing a substitution. The opening byte is already consumed.
func (lx *Lexer) scanTemplate(start Mark, head bool) token.Token {
	if !head {
		lx.tmpl = lx.tmpl[:len(lx.tmpl)-1]
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '`':
			lx.cursor.Bump()
			if head {
				return lx.emit(token.NoSubstTemplate, start)
			}
			return lx.emit(token.TemplateTail, start)
		case b == '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
		case b == '$' && lx.cursor.PeekAt(1) == '{':
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.tmpl = append(lx.tmpl, lx.braces)
			if head {
				return lx.emit(token.TemplateHead, start)
			}
			return lx.emit(token.TemplateMiddle, start)
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedTemplate, tok.Span, "unterminated template literal")
	return tok
}

// scanRegexp reads /body/flags. The body may contain '/' inside a class.
func (lx *Lexer) scanRegexp() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isLineTerminator(b) {
			break
		}
		lx.cursor.Bump()
		switch b {
		case '\\':
			if isLineTerminator(lx.cursor.Peek()) {
				continue
			}
			lx.cursor.Bump()
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.emit(token.RegexpLit, start)
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedRegexp, tok.Span, "unterminated regular expression")
	return tok
}
