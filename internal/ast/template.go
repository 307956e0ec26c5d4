package ast

import "unikit/internal/source"

// NodeType tags template-compiler nodes handed to codegen.
type NodeType uint8

const (
	NodeText NodeType = iota + 1
	NodeAttribute
	NodeDirective
	NodeSimpleExpression
)

// ConstType mirrors the template compiler's static analysis levels.
type ConstType uint8

const (
	NotConstant ConstType = iota
	CanSkipPatch
	CanHoist
	CanStringify
)

// SimpleExpression is an expression fragment as it appears in a template
// attribute, with its location in the template file.
type SimpleExpression struct {
	Content   string
	IsStatic  bool
	ConstType ConstType
	Loc       source.Location
	// AST is the parsed form once codegen has parsed Content; NoExprID before.
	AST ExprID
}

func (*SimpleExpression) Type() NodeType { return NodeSimpleExpression }

// NewSimpleExpression builds an expression node. Static content gets
// CanStringify, dynamic content NotConstant.
func NewSimpleExpression(content string, isStatic bool, loc source.Location) *SimpleExpression {
	ct := NotConstant
	if isStatic {
		ct = CanStringify
	}
	return &SimpleExpression{Content: content, IsStatic: isStatic, ConstType: ct, Loc: loc}
}

type TextNode struct {
	Content string
	Loc     source.Location
}

func (*TextNode) Type() NodeType { return NodeText }

// AttributeNode is a plain `name="value"` attribute.
type AttributeNode struct {
	Name  string
	Value *TextNode
	Loc   source.Location
}

func (*AttributeNode) Type() NodeType { return NodeAttribute }

// DirectiveNode is a `v-name:arg.modifier="exp"` attribute. Name has no
// `v-` prefix.
type DirectiveNode struct {
	Name      string
	Arg       *SimpleExpression
	Exp       *SimpleExpression
	Modifiers []string
	Loc       source.Location
}

func (*DirectiveNode) Type() NodeType { return NodeDirective }

// TemplateNode is any of the node types above.
type TemplateNode interface {
	Type() NodeType
}
