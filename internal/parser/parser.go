package parser

import (
	"slices"

	"unikit/internal/ast"
	"unikit/internal/diag"
	"unikit/internal/lexer"
	"unikit/internal/source"
	"unikit/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	// Base is where the fragment starts inside its template file.
	Base source.Position
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser - состояние парсера на один фрагмент
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики

	// shorthand-свойства с инициализатором `{a = 1}`; допустимы только в паттерне
	coverInits map[ast.ExprID]source.Span
}

func newParser(file *source.File, arenas *ast.Builder, opts Options) *Parser {
	return &Parser{
		lx:     lexer.New(file, lexer.Options{Reporter: opts.Reporter, Base: opts.Base}),
		arenas: arenas,
		opts:   opts,
	}
}

// ParseExpression parses the whole fragment as one expression. Anything
// after the expression is an error. The returned flag is false when any
// error was reported, lexer errors included.
func ParseExpression(file *source.File, arenas *ast.Builder, opts Options) (ast.ExprID, bool) {
	counter := &errorCounter{next: opts.Reporter}
	opts.Reporter = counter
	p := newParser(file, arenas, opts)

	expr, ok := p.parseExpr(precLowest)
	if ok && !p.at(token.EOF) {
		p.err(diag.SynTrailingTokens, "unexpected token "+describe(p.lx.Peek()))
		ok = false
	}
	if ok {
		for _, id := range p.pendingCoverInits() {
			p.report(diag.SynInvalidPattern, diag.SevError, p.coverInits[id], "invalid shorthand property initializer")
			ok = false
		}
	}
	if !ok || counter.errors > 0 {
		return ast.NoExprID, false
	}
	return expr, true
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) pendingCoverInits() []ast.ExprID {
	ids := make([]ast.ExprID, 0, len(p.coverInits))
	for id := range p.coverInits {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// errorCounter считает ошибки лексера и парсера, пробрасывая их дальше.
type errorCounter struct {
	next   diag.Reporter
	errors int
}

func (c *errorCounter) Report(code diag.Code, sev diag.Severity, primary source.Location, msg string, notes []diag.Note) {
	if sev >= diag.SevError {
		c.errors++
	}
	if c.next != nil {
		c.next.Report(code, sev, primary, msg, notes)
	}
}
