// Package trace records spans of unikit work: CLI commands, remap passes,
// per-map loads and per-directive codegen.
//
// It is the logging layer of the tool. Output goes to a stream (stderr or
// a file, text or NDJSON), to an in-memory ring that is dumped when a
// command fails, or to both.
//
//	unikit --trace=- --trace-level=detail remap kotlin --records out.json
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: ring only, dumped on failure
//   - LevelPhase: commands and passes
//   - LevelDetail: plus source maps and files
//   - LevelDebug: plus directive nodes
//
// # Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "remap/kotlin")
//	defer span.End("")
package trace
