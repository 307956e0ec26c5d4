// Package diag defines the diagnostic model shared by the expression parser
// and the directive codegen.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable ID (LEX, SYN, X and MAP ranges), a short Message, the Primary
// location inside the template and optional Notes.
//
// Producers emit through a Reporter so that storage stays decoupled. The
// parser uses ReportBuilder; codegen forwards CompileError values through
// its TransformContext, which ends up on a Reporter as well. BagReporter
// collects into a Bag that supports sorting and deduplication, and
// DedupReporter filters repeats on the fly.
//
// The package performs no IO. Format gives a one-line rendering used by the
// CLI and tests.
package diag
