// Package stacktrace maps native toolchain diagnostics back to the sources
// they were generated from.
//
// Input comes in three shapes: structured records (Kotlin compiler JSON),
// `path:line:col: error: msg` lines (swiftc, kotlinc text output) and boxed
// syntax errors from the UTS transpiler. Locations are resolved through
// source maps with a Resolver and rendered by a registered Style.
//
// Remapping is best effort. Unknown lines are dropped, a missing or broken
// map leaves the generated location in place, and nothing here fails the
// build on its own.
package stacktrace
