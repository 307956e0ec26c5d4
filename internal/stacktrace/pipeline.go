package stacktrace

import (
	"context"
	"fmt"
	"path/filepath"

	"unikit/internal/source"
	"unikit/internal/trace"
)

// KotlinOptions configures ParseKotlinStacktrace.
type KotlinOptions struct {
	InputDir             string // root of the generated .kt tree
	SourceMapDir         string // mirrors InputDir with .map files
	ReplaceTabsWithSpace bool
	Style                string
	// Resolver is shared across calls when set; otherwise one is created
	// for the call.
	Resolver *Resolver
}

// ParseKotlinStacktrace renders kotlinc records against the .uts sources.
func ParseKotlinStacktrace(ctx context.Context, records []Record, opts KotlinOptions) (string, error) {
	style, err := LookupStyle(opts.Style)
	if err != nil {
		return "", err
	}
	r, err := resolverFor(ctx, opts.Resolver)
	if err != nil {
		return "", err
	}
	loc := Locator{SourceMapDir: opts.SourceMapDir, InputDir: opts.InputDir}

	span, ctx := trace.StartSpan(ctx, trace.ScopePass, "remap/kotlin")
	defer span.End("")

	if err := r.Preload(ctx, recordFiles(records), loc); err != nil {
		return "", fmt.Errorf("preload source maps: %w", err)
	}
	frames := remap(records, loc, r, frameOptions{
		codeFrames:           true,
		replaceTabsWithSpace: opts.ReplaceTabsWithSpace,
	})
	return render(frames, style), nil
}

// SwiftOptions configures ParseSwiftPluginStacktrace.
type SwiftOptions struct {
	Stacktrace    string // raw swiftc/xcodebuild output
	SourceMapFile string
	SourceRoot    string
	Style         string
	Resolver      *Resolver
}

// ParseSwiftPluginStacktrace remaps a swiftc log through one map file.
func ParseSwiftPluginStacktrace(ctx context.Context, opts SwiftOptions) (string, error) {
	style, err := LookupStyle(opts.Style)
	if err != nil {
		return "", err
	}
	r, err := resolverFor(ctx, opts.Resolver)
	if err != nil {
		return "", err
	}
	span, _ := trace.StartSpan(ctx, trace.ScopePass, "remap/swift")
	defer span.End("")

	records := ParseLines(opts.Stacktrace)
	span.WithExtra("records", fmt.Sprint(len(records)))
	loc := Locator{MapFile: opts.SourceMapFile, SourceRoot: opts.SourceRoot}
	frames := remap(records, loc, r, frameOptions{codeFrames: true})
	return render(frames, style), nil
}

// SyntaxOptions configures ParseSyntaxError.
type SyntaxOptions struct {
	ReplaceTabsWithSpace bool
	Style                string
}

// ParseSyntaxError renders the boxed errors of the UTS transpiler. Paths
// are made relative to inputDir when they are inside it.
func ParseSyntaxError(msg, inputDir string, opts SyntaxOptions) (string, error) {
	style, err := LookupStyle(opts.Style)
	if err != nil {
		return "", err
	}
	boxes := ParseBoxed(msg, opts.ReplaceTabsWithSpace)
	frames := make([]ResolvedFrame, 0, len(boxes))
	for _, b := range boxes {
		f := ResolvedFrame{
			File:     relativeTo(b.File, inputDir),
			Line:     b.Line,
			Column:   max(b.Column, 1),
			Message:  b.Message,
			Severity: SevError,
			Code:     b.Code,
		}
		if b.CaretLine > 0 {
			f.Line, f.Column = b.CaretLine, b.CaretColumn
		}
		frames = append(frames, f)
	}
	return render(frames, style), nil
}

func relativeTo(file, dir string) string {
	if dir == "" || !filepath.IsAbs(file) {
		return source.NormalizePath(file)
	}
	rel, err := source.RelativePath(file, dir)
	if err != nil {
		return source.NormalizePath(file)
	}
	return rel
}

func resolverFor(ctx context.Context, r *Resolver) (*Resolver, error) {
	if r != nil {
		return r, nil
	}
	return NewResolver(ResolverOptions{Tracer: trace.FromContext(ctx)})
}
