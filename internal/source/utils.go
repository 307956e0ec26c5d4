package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
	bom  = []byte{0xEF, 0xBB, 0xBF}
)

// normalizeCRLF заменяет \r\n на \n, одиночные \r остаются.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

func removeBOM(content []byte) ([]byte, bool) {
	rest, ok := bytes.CutPrefix(content, bom)
	return rest, ok
}

// buildLineIndex records the offset of every '\n'.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, lf))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строк строго до off = номер строки (0-based)
	line, _ := slices.BinarySearch(lineIdx, off)
	var start uint32
	if line > 0 {
		start = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line + 1), Col: off - start + 1}
}

// NormalizePath приводит путь к единому виду: прямые слэши, Clean, NFC.
// Map sources produced on macOS often arrive NFD-encoded.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}
	return norm.NFC.String(filepath.ToSlash(filepath.Clean(p)))
}

// RelativePath returns target relative to baseDir. Targets outside baseDir
// fall back to the normalized target itself.
func RelativePath(target, baseDir string) (string, error) {
	if baseDir == "" {
		return NormalizePath(target), nil
	}
	rel, err := filepath.Rel(baseDir, target)
	if err != nil {
		return "", err
	}
	rel = NormalizePath(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return NormalizePath(target), nil
	}
	return rel, nil
}
