package ast

type Hints struct{ Exprs uint }

// Builder owns every expression node of one compiled unit. Node IDs are only
// meaningful against the builder that allocated them.
type Builder struct {
	Exprs *Exprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 6
	}
	return &Builder{
		Exprs: NewExprs(hints.Exprs),
	}
}
