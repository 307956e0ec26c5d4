package codegen

import "unikit/internal/ast"

// CodegenScope collects the properties of one generated object literal.
type CodegenScope struct {
	Parent     *CodegenScope
	Properties []ast.ExprID // ObjectProperty или SpreadElement
	ids        *IDGen
}

// NewRootScope returns a scope with a fresh id generator.
func NewRootScope() *CodegenScope {
	return &CodegenScope{ids: &IDGen{}}
}

// ID returns the scope's key generator.
func (s *CodegenScope) ID() *IDGen {
	if s.ids == nil {
		s.ids = &IDGen{}
	}
	return s.ids
}

// AddProperty appends a property or spread element.
func (s *CodegenScope) AddProperty(prop ast.ExprID) {
	if prop.IsValid() {
		s.Properties = append(s.Properties, prop)
	}
}

// Bind records value under a fresh key and returns the key.
func (s *CodegenScope) Bind(b *ast.Builder, value ast.ExprID) string {
	prop := CreateVIfProperty(b, value, s)
	s.AddProperty(prop)
	p, _ := b.Exprs.Property(prop)
	key, _ := b.Exprs.Ident(p.Key)
	return key.Name
}

// Object builds `{ ...properties }` for the scope.
func (s *CodegenScope) Object(b *ast.Builder) ast.ExprID {
	return CreateObjectExpression(b, s.Properties)
}
