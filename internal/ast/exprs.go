package ast

import (
	"unikit/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena        *Arena[Expr]
	Idents       *Arena[ExprIdentData]
	Literals     *Arena[ExprLitData]
	Templates    *Arena[ExprTemplateData]
	Arrays       *Arena[ExprArrayData]
	Objects      *Arena[ExprObjectData]
	Properties   *Arena[ExprPropertyData]
	Spreads      *Arena[ExprSpreadData]
	Calls        *Arena[ExprCallData]
	Members      *Arena[ExprMemberData]
	Indices      *Arena[ExprIndexData]
	Unaries      *Arena[ExprUnaryData]
	Updates      *Arena[ExprUpdateData]
	Binaries     *Arena[ExprBinaryData]
	Conditionals *Arena[ExprConditionalData]
	Assigns      *Arena[ExprAssignData]
	Sequences    *Arena[ExprSequenceData]
	Arrows       *Arena[ExprArrowData]
	Parens       *Arena[ExprParenData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint.
// Rare kinds get a quarter of the hint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	rare := capHint/4 + 1
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Idents:       NewArena[ExprIdentData](capHint),
		Literals:     NewArena[ExprLitData](capHint),
		Templates:    NewArena[ExprTemplateData](rare),
		Arrays:       NewArena[ExprArrayData](rare),
		Objects:      NewArena[ExprObjectData](rare),
		Properties:   NewArena[ExprPropertyData](capHint),
		Spreads:      NewArena[ExprSpreadData](rare),
		Calls:        NewArena[ExprCallData](rare),
		Members:      NewArena[ExprMemberData](capHint),
		Indices:      NewArena[ExprIndexData](rare),
		Unaries:      NewArena[ExprUnaryData](rare),
		Updates:      NewArena[ExprUpdateData](rare),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Conditionals: NewArena[ExprConditionalData](rare),
		Assigns:      NewArena[ExprAssignData](rare),
		Sequences:    NewArena[ExprSequenceData](rare),
		Arrows:       NewArena[ExprArrowData](rare),
		Parens:       NewArena[ExprParenData](rare),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID, or nil.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Kind returns the kind of id, or 0 for an unknown id.
func (e *Exprs) Kind(id ExprID) ExprKind {
	if x := e.Get(id); x != nil {
		return x.Kind
	}
	return 0
}

func (e *Exprs) payload(id ExprID, kinds ...ExprKind) (uint32, bool) {
	x := e.Get(id)
	if x == nil {
		return 0, false
	}
	for _, k := range kinds {
		if x.Kind == k {
			return uint32(x.Payload), true
		}
	}
	return 0, false
}

func (e *Exprs) NewIdent(span source.Span, name string) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewThis(span source.Span) ExprID {
	return e.new(ExprThis, span, 0)
}

func (e *Exprs) NewLiteral(span source.Span, kind LitKind, value string) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(ExprLitData{Kind: kind, Value: value}))
}

func (e *Exprs) NewRegexp(span source.Span, pattern, flags string) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(ExprLitData{Kind: LitRegexp, Value: pattern, Flags: flags}))
}

func (e *Exprs) Literal(id ExprID) (*ExprLitData, bool) {
	p, ok := e.payload(id, ExprLit)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewTemplate(span source.Span, tag ExprID, quasis []string, exprs []ExprID) ExprID {
	return e.new(ExprTemplate, span, e.Templates.Allocate(ExprTemplateData{
		Tag:    tag,
		Quasis: append([]string(nil), quasis...),
		Exprs:  append([]ExprID(nil), exprs...),
	}))
}

func (e *Exprs) Template(id ExprID) (*ExprTemplateData, bool) {
	p, ok := e.payload(id, ExprTemplate)
	if !ok {
		return nil, false
	}
	return e.Templates.Get(p), true
}

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	return e.new(ExprArray, span, e.Arrays.Allocate(ExprArrayData{Elems: append([]ExprID(nil), elems...)}))
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	p, ok := e.payload(id, ExprArray)
	if !ok {
		return nil, false
	}
	return e.Arrays.Get(p), true
}

func (e *Exprs) NewObject(span source.Span, props []ExprID) ExprID {
	return e.new(ExprObject, span, e.Objects.Allocate(ExprObjectData{Props: append([]ExprID(nil), props...)}))
}

func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	p, ok := e.payload(id, ExprObject)
	if !ok {
		return nil, false
	}
	return e.Objects.Get(p), true
}

func (e *Exprs) NewProperty(span source.Span, key, value ExprID, computed, shorthand bool) ExprID {
	return e.new(ExprProperty, span, e.Properties.Allocate(ExprPropertyData{
		Key: key, Value: value, Computed: computed, Shorthand: shorthand,
	}))
}

func (e *Exprs) Property(id ExprID) (*ExprPropertyData, bool) {
	p, ok := e.payload(id, ExprProperty)
	if !ok {
		return nil, false
	}
	return e.Properties.Get(p), true
}

func (e *Exprs) NewSpread(span source.Span, arg ExprID) ExprID {
	return e.new(ExprSpread, span, e.Spreads.Allocate(ExprSpreadData{Arg: arg}))
}

func (e *Exprs) Spread(id ExprID) (*ExprSpreadData, bool) {
	p, ok := e.payload(id, ExprSpread)
	if !ok {
		return nil, false
	}
	return e.Spreads.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID, optional bool) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{
		Callee: callee, Args: append([]ExprID(nil), args...), Optional: optional,
	}))
}

func (e *Exprs) NewNew(span source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprNew, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: append([]ExprID(nil), args...)}))
}

// Call returns call data for ExprCall and ExprNew.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall, ExprNew)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewMember(span source.Span, object ExprID, name string, optional bool) ExprID {
	return e.new(ExprMember, span, e.Members.Allocate(ExprMemberData{Object: object, Name: name, Optional: optional}))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payload(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

func (e *Exprs) NewIndex(span source.Span, object, index ExprID, optional bool) ExprID {
	return e.new(ExprIndex, span, e.Indices.Allocate(ExprIndexData{Object: object, Index: index, Optional: optional}))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	p, ok := e.payload(id, ExprIndex)
	if !ok {
		return nil, false
	}
	return e.Indices.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewUpdate(span source.Span, increment, prefix bool, operand ExprID) ExprID {
	return e.new(ExprUpdate, span, e.Updates.Allocate(ExprUpdateData{Increment: increment, Prefix: prefix, Operand: operand}))
}

func (e *Exprs) Update(id ExprID) (*ExprUpdateData, bool) {
	p, ok := e.payload(id, ExprUpdate)
	if !ok {
		return nil, false
	}
	return e.Updates.Get(p), true
}

// NewBinary allocates ExprLogical for short-circuit operators and ExprBinary
// otherwise.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	kind := ExprBinary
	if op.IsLogical() {
		kind = ExprLogical
	}
	return e.new(kind, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

// Binary returns operator data for ExprBinary and ExprLogical.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary, ExprLogical)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewConditional(span source.Span, test, cons, alt ExprID) ExprID {
	return e.new(ExprConditional, span, e.Conditionals.Allocate(ExprConditionalData{Test: test, Cons: cons, Alt: alt}))
}

func (e *Exprs) Conditional(id ExprID) (*ExprConditionalData, bool) {
	p, ok := e.payload(id, ExprConditional)
	if !ok {
		return nil, false
	}
	return e.Conditionals.Get(p), true
}

func (e *Exprs) NewAssign(span source.Span, op ExprAssignOp, target, value ExprID) ExprID {
	return e.new(ExprAssign, span, e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value}))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

func (e *Exprs) NewSequence(span source.Span, exprs []ExprID) ExprID {
	return e.new(ExprSequence, span, e.Sequences.Allocate(ExprSequenceData{Exprs: append([]ExprID(nil), exprs...)}))
}

func (e *Exprs) Sequence(id ExprID) (*ExprSequenceData, bool) {
	p, ok := e.payload(id, ExprSequence)
	if !ok {
		return nil, false
	}
	return e.Sequences.Get(p), true
}

func (e *Exprs) NewArrow(span source.Span, params []ExprID, body ExprID, block bool) ExprID {
	return e.new(ExprArrow, span, e.Arrows.Allocate(ExprArrowData{
		Params: append([]ExprID(nil), params...), Body: body, Block: block,
	}))
}

func (e *Exprs) Arrow(id ExprID) (*ExprArrowData, bool) {
	p, ok := e.payload(id, ExprArrow)
	if !ok {
		return nil, false
	}
	return e.Arrows.Get(p), true
}

func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	return e.new(ExprParen, span, e.Parens.Allocate(ExprParenData{Inner: inner}))
}

func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	p, ok := e.payload(id, ExprParen)
	if !ok {
		return nil, false
	}
	return e.Parens.Get(p), true
}

// Unparen strips any number of ExprParen wrappers.
func (e *Exprs) Unparen(id ExprID) ExprID {
	for {
		p, ok := e.Paren(id)
		if !ok {
			return id
		}
		id = p.Inner
	}
}
