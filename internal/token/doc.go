// Package token defines lexical token kinds and trivia for template
// expressions (a JavaScript expression subset).
// Invariants:
//   - Token.Text is the exact source slice of Token.Span.
//   - Template literals are split into TemplateHead / TemplateMiddle /
//     TemplateTail pieces; a literal without substitutions is a single
//     NoSubstTemplate token.
//   - `undefined`, `of`, `async` are identifiers; only reserved words the
//     expression grammar reacts to get their own kinds.
package token
