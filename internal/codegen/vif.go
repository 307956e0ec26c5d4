package codegen

import (
	"unikit/internal/ast"
	"unikit/internal/diag"
	"unikit/internal/source"
)

// VIfBranch is the directive that opened a branch.
type VIfBranch uint8

const (
	BranchIf VIfBranch = iota + 1
	BranchElseIf
	BranchElse
)

func (b VIfBranch) String() string {
	switch b {
	case BranchIf:
		return "if"
	case BranchElseIf:
		return "else-if"
	case BranchElse:
		return "else"
	default:
		return "unknown"
	}
}

// VIfScope collects the properties rendered under one branch. Its keys come
// from the parent's generator because the branch object is spread into the
// parent.
type VIfScope struct {
	CodegenScope
	Branch    VIfBranch
	Condition ast.ExprID // NoExprID для else и для неразобранного условия
}

func newVIfScope(parent *CodegenScope, branch VIfBranch, condition ast.ExprID) *VIfScope {
	return &VIfScope{
		CodegenScope: CodegenScope{Parent: parent, ids: parent.ID()},
		Branch:       branch,
		Condition:    condition,
	}
}

// VIfChain groups adjacent v-if / v-else-if / v-else branches into one
// spread of nested ternaries on the parent scope.
type VIfChain struct {
	ctx      TransformContext
	b        *ast.Builder
	parent   *CodegenScope
	branches []*VIfScope
	// ended: ветка с истинным литералом уже открыта, дальше ничего не выживет
	ended bool
}

func NewVIfChain(ctx TransformContext, b *ast.Builder, parent *CodegenScope) *VIfChain {
	return &VIfChain{ctx: ctx, b: b, parent: parent}
}

// If starts a new chain. A chain still open is closed first.
func (c *VIfChain) If(exp *ast.SimpleExpression) *VIfScope {
	if len(c.branches) > 0 {
		c.Close()
	}
	return c.open(BranchIf, exp)
}

// ElseIf adds a branch to the open chain.
func (c *VIfChain) ElseIf(exp *ast.SimpleExpression) *VIfScope {
	if !c.canContinue(locOf(exp)) {
		return nil
	}
	return c.open(BranchElseIf, exp)
}

// Else adds the final branch to the open chain.
func (c *VIfChain) Else(loc source.Location) *VIfScope {
	if !c.canContinue(&loc) {
		return nil
	}
	scope := newVIfScope(c.parent, BranchElse, ast.NoExprID)
	c.branches = append(c.branches, scope)
	return scope
}

// Open reports whether branches are waiting for Close.
func (c *VIfChain) Open() bool {
	return len(c.branches) > 0
}

func (c *VIfChain) canContinue(loc *source.Location) bool {
	n := len(c.branches)
	if n == 0 || c.branches[n-1].Branch == BranchElse {
		reportError(c.ctx, diag.XVElseNoAdjacentIf, loc, "v-else/v-else-if has no adjacent v-if or v-else-if")
		return false
	}
	return true
}

// open разбирает условие и записывает его в родителя под новым ключом.
// Неразобранное условие даёт ветку без теста; Close её пропустит.
// Литеральные условия и ветки после истинного литерала в вывод не попадают,
// поэтому ключ им не выдаётся.
func (c *VIfChain) open(branch VIfBranch, exp *ast.SimpleExpression) *VIfScope {
	condition := ast.NoExprID
	switch {
	case exp == nil || exp.Content == "":
		reportError(c.ctx, diag.XVIfNoExpression, locOf(exp), "v-"+branch.String()+" is missing expression")
	default:
		if id, ok := ParseExprNode(c.ctx, c.b, exp); ok {
			condition = id
			_, static := c.b.Exprs.Literal(c.b.Exprs.Unparen(id))
			if !static && !c.ended {
				c.parent.Bind(c.b, id)
			}
			if static && IsTrueExpr(c.b, id) {
				c.ended = true
			}
		}
	}
	scope := newVIfScope(c.parent, branch, condition)
	c.branches = append(c.branches, scope)
	return scope
}

// Close emits `...(c1 ? { p1 } : c2 ? { p2 } : { pElse })` onto the parent
// and resets the chain. The last alternate is always an object literal.
// Branches whose test is a falsy literal are dropped; a truthy literal
// test ends the chain.
func (c *VIfChain) Close() ast.ExprID {
	if len(c.branches) == 0 {
		return ast.NoExprID
	}
	span := beginSpan(c.ctx, "codegen/vif")
	defer span.End("")

	branches := make([]*VIfScope, 0, len(c.branches))
	alt := ast.NoExprID
	for _, br := range c.branches {
		if br.Branch == BranchElse {
			alt = br.Object(c.b)
			break
		}
		if !br.Condition.IsValid() || !IsTrueExpr(c.b, br.Condition) {
			continue
		}
		if _, static := c.b.Exprs.Literal(c.b.Exprs.Unparen(br.Condition)); static {
			alt = br.Object(c.b)
			break
		}
		branches = append(branches, br)
	}
	c.branches = nil
	c.ended = false

	if len(branches) == 1 && !alt.IsValid() {
		spread := CreateVIfSpreadElement(c.b, branches[0])
		c.parent.AddProperty(spread)
		return spread
	}
	expr := alt
	if !expr.IsValid() {
		expr = CreateObjectExpression(c.b, nil)
	}
	for i := len(branches) - 1; i >= 0; i-- {
		br := branches[i]
		expr = c.b.Exprs.NewConditional(noSpan, br.Condition, br.Object(c.b), expr)
	}
	spread := CreateSpreadElement(c.b, expr)
	c.parent.AddProperty(spread)
	return spread
}

func locOf(exp *ast.SimpleExpression) *source.Location {
	if exp == nil {
		return nil
	}
	return &exp.Loc
}
