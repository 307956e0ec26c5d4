package codegen

import (
	"fmt"
	"slices"

	"unikit/internal/diag"
	"unikit/internal/source"
	"unikit/internal/trace"
)

// Helper names a runtime helper referenced by generated code.
type Helper string

const (
	HelperVFor Helper = "vFor"
)

// DefaultHelperPrefix is prepended to helper names in generated identifiers.
const DefaultHelperPrefix = "_"

// CompileError is a non-fatal failure inside one directive.
type CompileError struct {
	Code    diag.Code
	Loc     *source.Location // nil when the directive has no location
	Message string
	Notes   []diag.Note
}

func (e *CompileError) Error() string {
	if e.Loc != nil && !e.Loc.IsStub() {
		return fmt.Sprintf("%s: %s: %s", e.Loc, e.Code.Title(), e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code.Title(), e.Message)
}

// TransformContext is what codegen needs from the surrounding compiler.
type TransformContext interface {
	OnError(err *CompileError)
	HelperString(h Helper) string
}

// Options configures a Context.
type Options struct {
	Reporter     diag.Reporter
	HelperPrefix string // DefaultHelperPrefix when empty
	Tracer       trace.Tracer
}

// Context is the standard TransformContext: errors go to a diag.Reporter,
// used helpers are recorded for the import prelude.
type Context struct {
	reporter diag.Reporter
	prefix   string
	tracer   trace.Tracer
	helpers  map[Helper]int
	errors   int
}

func NewContext(opts Options) *Context {
	prefix := opts.HelperPrefix
	if prefix == "" {
		prefix = DefaultHelperPrefix
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Context{
		reporter: opts.Reporter,
		prefix:   prefix,
		tracer:   tracer,
		helpers:  make(map[Helper]int),
	}
}

// OnError converts err into an error diagnostic.
func (c *Context) OnError(err *CompileError) {
	if err == nil {
		return
	}
	c.errors++
	loc := source.LocStub
	if err.Loc != nil {
		loc = *err.Loc
	}
	b := diag.ReportError(c.reporter, err.Code, loc, err.Message)
	for _, n := range err.Notes {
		b.WithNote(n.Loc, n.Msg)
	}
	b.Emit()
}

// HelperString returns the identifier for h and marks it as used.
func (c *Context) HelperString(h Helper) string {
	c.helpers[h]++
	return c.prefix + string(h)
}

// Helpers returns the helpers referenced so far, sorted by name.
func (c *Context) Helpers() []Helper {
	out := make([]Helper, 0, len(c.helpers))
	for h := range c.helpers {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Errors returns how many compile errors were reported.
func (c *Context) Errors() int {
	return c.errors
}

// Tracer returns the tracer spans are emitted to.
func (c *Context) Tracer() trace.Tracer {
	return c.tracer
}

// beginSpan открывает span, если контекст умеет трассировку.
func beginSpan(ctx TransformContext, name string) *trace.Span {
	if t, ok := ctx.(interface{ Tracer() trace.Tracer }); ok {
		return trace.Begin(t.Tracer(), trace.ScopeNode, name, 0)
	}
	return trace.Begin(trace.Nop, trace.ScopeNode, name, 0)
}

func reportError(ctx TransformContext, code diag.Code, loc *source.Location, msg string) {
	if ctx == nil {
		return
	}
	ctx.OnError(&CompileError{Code: code, Loc: loc, Message: msg})
}
