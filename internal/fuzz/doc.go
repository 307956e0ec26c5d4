// Package fuzztests houses Go fuzz harnesses for the input-facing parts of
// unikit: the template expression lexer and parser, and the native log
// readers of the stacktrace remapper.
//
// Назначение: гонять произвольные байты через лексер, парсер и разбор логов,
// ловить паники и зависания.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser, internal/diag,
// internal/ast, internal/stacktrace.
package fuzztests
