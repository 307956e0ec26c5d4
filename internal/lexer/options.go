package lexer

import (
	"unikit/internal/diag"
	"unikit/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
	// Base is where the fragment starts inside its template. Zero means 1:1.
	Base source.Position
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, lx.file.Locate(sp, lx.opts.Base), msg, nil)
}
