// Package codegen lowers template directive scopes into expression trees.
//
// A compiled unit owns one ast.Builder. Directive expressions are parsed into
// it with ParseExpr/ParseParam, conditional branches are collected by
// VIfChain and list rendering by VForScope, and the results are emitted as
// object properties on the enclosing CodegenScope:
//
//	{ a: cond, ...(cond ? { b: x } : {}), c: _vFor(list, item => { return { a: item }; }) }
//
// Failures never abort the unit. They are reported once through
// TransformContext.OnError and the affected directive is skipped.
package codegen
