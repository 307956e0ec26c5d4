package stacktrace

import (
	"errors"
	"strings"
	"testing"
)

func TestStylesIntroducer(t *testing.T) {
	frame := ResolvedFrame{File: "pages/index.uts", Line: 3, Column: 7, Message: "Unresolved reference: test", Severity: SevError}
	for _, id := range []string{StyleHBuilder, StylePlain, StyleTerminal} {
		s, err := LookupStyle(id)
		if err != nil {
			t.Fatalf("LookupStyle(%q): %v", id, err)
		}
		if got := CountIntroducers(s.Frame(frame)); got != 1 {
			t.Errorf("%s: frame has %d introducers:\n%s", id, got, s.Frame(frame))
		}
		if got := CountIntroducers(s.Message(SevWarning, "Classpath entry points to a non-existent location")); got != 0 {
			t.Errorf("%s: message has %d introducers", id, got)
		}
		if !strings.Contains(s.Frame(frame), "pages/index.uts:3:7") {
			t.Errorf("%s: location missing:\n%s", id, s.Frame(frame))
		}
	}
}

func TestFormatIntroducerCount(t *testing.T) {
	located := []ResolvedFrame{
		{File: "a.uts", Line: 1, Column: 1, Message: "Type mismatch at argument 1", Severity: SevError, Code: "> 1 | val cat = 1\n    |     ^"},
		{File: "b.uts", Line: 2, Column: 3, Message: "first line\nat the start of a line", Severity: SevWarning},
		{File: "c.uts", Line: 4, Column: 5, Message: "plain", Severity: SevError, Code: "  at indented code"},
	}
	messages := []ResolvedFrame{
		{Message: "Classpath entry at /tmp", Severity: SevWarning},
		{Message: "two\n  at lines", Severity: SevError},
	}
	tests := []struct {
		name   string
		frames []ResolvedFrame
		want   int
	}{
		{"none", messages, 0},
		{"one", append([]ResolvedFrame{located[0]}, messages...), 1},
		{"three", append(append([]ResolvedFrame(nil), located...), messages...), 3},
	}
	for _, id := range StyleIDs() {
		for _, tt := range tests {
			out, err := Format(tt.frames, id)
			if err != nil {
				t.Fatalf("%s/%s: %v", id, tt.name, err)
			}
			if got := CountIntroducers(out); got != tt.want {
				t.Errorf("%s/%s: got %d introducers, want %d:\n%s", id, tt.name, got, tt.want, out)
			}
		}
	}
}

func TestGuardTextKeepsText(t *testing.T) {
	got := guardText("ok\n\tat x\nwhat at")
	if got != "ok\n\tat\u00a0x\nwhat at" {
		t.Errorf("guardText = %q", got)
	}
	if CountIntroducers(got) != 0 {
		t.Errorf("escaped text still counts: %q", got)
	}
}

func TestHBuilderFrame(t *testing.T) {
	s, _ := LookupStyle("")
	got := s.Frame(ResolvedFrame{File: "a.uts", Line: 1, Column: 2, Message: "boom", Severity: SevError, Code: "> 1 | x"})
	want := "error: boom\nat a.uts:1:2\n> 1 | x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := s.Message(SevWarning, "careful"); got != "warning: careful" {
		t.Errorf("message %q", got)
	}
}

func TestFormatUnknownStyle(t *testing.T) {
	_, err := Format(nil, "fancy")
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("got %v, want ErrUnknownStyle", err)
	}
}

func TestFormatKeepsOrder(t *testing.T) {
	frames := []ResolvedFrame{
		{Message: "first", Severity: SevWarning},
		{File: "b.uts", Line: 2, Column: 1, Message: "second", Severity: SevError},
		{Message: "third", Severity: SevError},
	}
	out, err := Format(frames, StylePlain)
	if err != nil {
		t.Fatal(err)
	}
	want := "first\nsecond\n    at b.uts:2:1\nthird"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

type upperStyle struct{}

func (upperStyle) ID() string { return "upper" }
func (upperStyle) Frame(f ResolvedFrame) string {
	return strings.ToUpper(f.Message) + "\nat " + f.File
}
func (upperStyle) Message(_ Severity, m string) string { return strings.ToUpper(m) }

func TestRegisterStyle(t *testing.T) {
	RegisterStyle(upperStyle{})
	out, err := Format([]ResolvedFrame{{File: "x", Line: 1, Column: 1, Message: "hi"}}, "upper")
	if err != nil {
		t.Fatal(err)
	}
	if out != "HI\nat x" {
		t.Errorf("got %q", out)
	}
	found := false
	for _, id := range StyleIDs() {
		found = found || id == "upper"
	}
	if !found {
		t.Errorf("upper not listed in %v", StyleIDs())
	}
}

func TestCodeFrame(t *testing.T) {
	content := "one\ntwo\n\tthree()\nfour\nfive\nsix"
	got := CodeFrame(content, 3, 2, true)
	want := strings.Join([]string{
		"  1 | one",
		"  2 | two",
		"> 3 |  three()",
		"    |  ^",
		"  4 | four",
		"  5 | five",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if CodeFrame(content, 40, 1, false) != "" {
		t.Errorf("out of range line should give empty frame")
	}
}
