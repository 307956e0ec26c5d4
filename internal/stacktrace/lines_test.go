package stacktrace

import (
	"strings"
	"testing"
)

func TestParseLines(t *testing.T) {
	blob := strings.Join([]string{
		"Compiling index.swift",
		"/src/index.swift:3:12: error: cannot convert return expression",
		"",
		"   some noise",
		"/src/other.swift:7: warning: unused variable 'x'",
		"/src/index.swift:9:1: note: declared here\r",
		"e: file:///work/src/main.kt:33:21 Unresolved reference: test",
		"w: /work/src/util.kt:2:5 Parameter 'a' is never used",
		"BUILD FAILED",
	}, "\n")

	want := []Record{
		{Type: SevError, File: "/src/index.swift", Line: 3, Column: 12, Message: "cannot convert return expression"},
		{Type: SevWarning, File: "/src/other.swift", Line: 7, Message: "unused variable 'x'"},
		{Type: SevWarning, File: "/src/index.swift", Line: 9, Column: 1, Message: "declared here"},
		{Type: SevError, File: "/work/src/main.kt", Line: 33, Column: 21, Message: "Unresolved reference: test"},
		{Type: SevWarning, File: "/work/src/util.kt", Line: 2, Column: 5, Message: "Parameter 'a' is never used"},
	}
	got := ParseLines(blob)
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseLinesEmpty(t *testing.T) {
	for _, blob := range []string{"", "\n\n", "nothing to see\nat all"} {
		if got := ParseLines(blob); len(got) != 0 {
			t.Errorf("ParseLines(%q) = %+v, want none", blob, got)
		}
	}
}

func TestValidateRecords(t *testing.T) {
	raw := []RawRecord{
		{Type: "warning", Message: "classpath"},
		{Type: "info", Message: "dropped"},
		{Type: "ERROR", Message: "boom", File: "a.kt", Line: 3, Column: -1},
		{Type: "", Message: "dropped too"},
	}
	got := ValidateRecords(raw)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(got), got)
	}
	if got[0].Type != SevWarning || got[0].Message != "classpath" || got[0].HasLocation() {
		t.Errorf("record 0 = %+v", got[0])
	}
	if got[1].Type != SevError || got[1].Column != 0 || !got[1].HasLocation() {
		t.Errorf("record 1 = %+v", got[1])
	}
}

func TestDecodeRecords(t *testing.T) {
	in := `[{"type":"error","message":"m","file":"f.kt","line":2,"column":3}]`
	raw, err := DecodeRecords(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(raw) != 1 || raw[0].File != "f.kt" || raw[0].Line != 2 || raw[0].Column != 3 {
		t.Fatalf("unexpected records: %+v", raw)
	}
	if _, err := DecodeRecords(strings.NewReader("{")); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"e", SevError, true},
		{"error", SevError, true},
		{"w", SevWarning, true},
		{"note", SevWarning, true},
		{"info", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSeverity(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSeverity(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
