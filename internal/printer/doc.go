// Package printer renders expression trees from internal/ast back to source
// text on a single line.
//
// Parentheses come from two places: ExprParen nodes kept by the parser are
// printed as written, and synthesized trees get the minimal parentheses that
// operator precedence requires. Strings use single quotes. An arrow with a
// single identifier parameter prints without parentheses around it.
package printer
