package stacktrace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const swiftSourceRoot = "/Users/xxx/DCloud/test-uts"

// swiftMap maps index.swift 3:12 -> 2:10 and 6:12 -> 5:10.
func swiftMap() map[string]any {
	return map[string]any{
		"version":  3,
		"file":     "index.swift",
		"sources":  []string{swiftSourceRoot + "/uni_modules/test-uts1/utssdk/app-ios/index.uts"},
		"names":    []string{},
		"mappings": ";;WACS;;;WAGA",
	}
}

// kotlinMap maps test.kt 33:21 -> test.uts 10:5 and carries its content.
func kotlinMap() map[string]any {
	var lines []string
	for i := 1; i <= 12; i++ {
		lines = append(lines, "let line"+strings.Repeat("x", i%3)+" = "+string(rune('0'+i%10)))
	}
	lines[9] = "\tconst a = test()"
	return map[string]any{
		"version":        3,
		"file":           "test.kt",
		"sources":        []string{"components/test/test.uts"},
		"sourcesContent": []string{strings.Join(lines, "\n")},
		"names":          []string{},
		"mappings":       strings.Repeat(";", 32) + "oBASI",
	}
}

func writeMap(t *testing.T, path string, m map[string]any) {
	t.Helper()
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal map: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write map: %v", err)
	}
}

func newTestResolver(t *testing.T, opts ResolverOptions) *Resolver {
	t.Helper()
	r, err := NewResolver(opts)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}
