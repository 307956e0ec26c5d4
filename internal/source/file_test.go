package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLineIndex(t *testing.T) {
	f := NewVirtualFile("frag.vue", "a\nbc\r\ndef")
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected CRLF flag, got %b", f.Flags)
	}
	if got := f.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	for i, want := range []string{"a", "bc", "def"} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine past end = %q, want empty", got)
	}
	if lc := f.Resolve(3); lc != (LineCol{Line: 2, Col: 2}) {
		t.Errorf("Resolve(3) = %+v, want 2:2", lc)
	}
}

func TestFileBOMRemoval(t *testing.T) {
	f := NewFile("x.kt", []byte{0xEF, 0xBB, 0xBF, 'o', 'k'}, 0)
	if string(f.Content) != "ok" || f.Flags&FileHadBOM == 0 {
		t.Fatalf("BOM not stripped: %q flags=%b", f.Content, f.Flags)
	}
}

func TestFileLocate(t *testing.T) {
	f := NewVirtualFile("", "item.a +\n  )")
	base := Position{Offset: 100, Line: 5, Column: 10}
	loc := f.Locate(Span{Start: 11, End: 12}, base)
	if loc.Start.Line != 6 || loc.Start.Column != 3 {
		t.Fatalf("start = %+v, want line 6 col 3", loc.Start)
	}
	if loc.Start.Offset != 111 {
		t.Fatalf("offset = %d, want 111", loc.Start.Offset)
	}
	if loc.Source != ")" {
		t.Fatalf("source = %q", loc.Source)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.uts")
	if err := os.WriteFile(path, []byte("line1\r\nline2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.GetLine(2) != "line2" {
		t.Errorf("GetLine(2) = %q", f.GetLine(2))
	}
	if f.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2", f.LineCount())
	}
}

func TestLocStub(t *testing.T) {
	if !LocStub.IsStub() {
		t.Fatal("LocStub must report itself as stub")
	}
	loc := Location{File: "pages/index.vue", Start: Position{Line: 3, Column: 7}}
	if loc.IsStub() {
		t.Fatal("real location reported as stub")
	}
	if loc.String() != "pages/index.vue:3:7" {
		t.Errorf("String = %q", loc.String())
	}
}
