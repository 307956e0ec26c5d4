package diag

import (
	"testing"

	"unikit/internal/source"
)

func loc(file string, line, col, off uint32) source.Location {
	p := source.Position{Offset: off, Line: line, Column: col}
	return source.Location{File: file, Start: p, End: p}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(NewError(XInvalidExpression, loc("a.vue", 1, 1, uint32(i)), "bad"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SynUnexpectedToken, loc("b.vue", 2, 1, 10), "w"))
	b.Add(NewError(XInvalidExpression, loc("a.vue", 1, 5, 4), "e1"))
	b.Add(NewError(SynUnexpectedToken, loc("b.vue", 2, 1, 10), "e2"))
	b.Add(NewError(XInvalidExpression, loc("a.vue", 1, 5, 4), "e1 again"))
	b.Sort()
	items := b.Items()
	if items[0].Primary.File != "a.vue" {
		t.Fatalf("first file = %q, want a.vue", items[0].Primary.File)
	}
	if items[2].Severity != SevError || items[3].Severity != SevWarning {
		t.Fatalf("errors must sort before warnings at the same location: %v, %v", items[2].Severity, items[3].Severity)
	}
	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("Dedup left %d items, want 3", b.Len())
	}
	if b.Items()[2].Severity != SevWarning {
		t.Fatalf("warning sharing code and range with an error must survive Dedup: %v", b.Items())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(XInvalidExpression, source.LocStub, "x"))
	other := NewBag(2)
	other.Add(NewError(XVForNoExpression, source.LocStub, "y"))
	other.Add(NewError(XVForMalformedExpression, source.LocStub, "z"))
	a.Merge(other)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("Merge: len=%d cap=%d, want 3/3", a.Len(), a.Cap())
	}
	a.Merge(nil)
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	l := loc("a.vue", 3, 2, 20)
	r.Report(XInvalidExpression, SevError, l, "bad", nil)
	r.Report(XInvalidExpression, SevError, l, "bad", nil)
	r.Report(XInvalidExpression, SevError, l, "other", nil)
	if bag.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	var got []Diagnostic
	r := FuncReporter(func(d Diagnostic) { got = append(got, d) })
	b := ReportError(r, SynUnclosedParen, loc("", 1, 4, 3), "expected ')'").
		WithNote(loc("", 1, 1, 0), "opened here")
	b.Emit()
	b.Emit()
	if len(got) != 1 {
		t.Fatalf("emitted %d times, want 1", len(got))
	}
	if len(got[0].Notes) != 1 {
		t.Fatalf("notes = %d, want 1", len(got[0].Notes))
	}
}

func TestFormat(t *testing.T) {
	d := NewError(XInvalidExpression, loc("pages/index.vue", 3, 7, 40), "Error parsing JavaScript expression: Unexpected token")
	want := "pages/index.vue:3:7: ERROR [X3001]: Error parsing JavaScript expression: Unexpected token"
	if got := Format(d); got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
	d = NewError(XVForNoExpression, source.Location{}, "v-for is missing expression")
	if got := Format(d); got != "ERROR [X3004]: v-for is missing expression" {
		t.Errorf("Format without location = %q", got)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexBadNumber:       "LEX1004",
		SynUnclosedParen:   "SYN2002",
		XInvalidExpression: "X3001",
		MapNotFound:        "MAP4001",
		UnknownCode:        "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
}
