package stacktrace

import (
	"path/filepath"
	"strings"

	"unikit/internal/source"
)

// Locator decides which source map belongs to a generated file.
type Locator struct {
	// MapFile is used for every file when set.
	MapFile string
	// SourceMapDir mirrors InputDir: <SourceMapDir>/<rel(InputDir, file)>.map
	SourceMapDir string
	InputDir     string
	// SourceRoot is stripped from resolved paths.
	SourceRoot string
}

// MapPath returns the map for file. Files outside InputDir have none.
func (l Locator) MapPath(file string) (string, bool) {
	if l.MapFile != "" {
		return source.NormalizePath(l.MapFile), true
	}
	if l.SourceMapDir == "" || file == "" {
		return "", false
	}
	rel := file
	if l.InputDir != "" {
		r, err := filepath.Rel(l.InputDir, file)
		if err != nil {
			return "", false
		}
		rel = r
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") || filepath.IsAbs(rel) {
		return "", false
	}
	return source.NormalizePath(filepath.Join(l.SourceMapDir, rel) + ".map"), true
}
