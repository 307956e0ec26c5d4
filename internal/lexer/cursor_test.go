package lexer

import (
	"testing"

	"unikit/internal/source"
)

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(source.NewVirtualFile("t", "a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if c.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatalf("cursor must be exhausted")
	}
}

func TestCursorMarkResetAndEatString(t *testing.T) {
	c := NewCursor(source.NewVirtualFile("t", ">>>= x"))
	m := c.Mark()
	if !c.EatString(">>>=") {
		t.Fatalf("EatString failed")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 4 {
		t.Fatalf("span = %s", sp)
	}
	c.Reset(m)
	if c.EatString(">>>=x") {
		t.Fatalf("EatString must not match past mismatch")
	}
	if c.Off != 0 {
		t.Fatalf("failed EatString moved cursor to %d", c.Off)
	}
	if c.PeekAt(3) != '=' || c.PeekAt(99) != 0 {
		t.Fatalf("PeekAt mismatch")
	}
}
