package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"
)

// Bag collects diagnostics of one compiled unit up to a limit.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(limit int) *Bag {
	capped, err := safecast.Conv[uint16](limit)
	if err != nil {
		capped = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(limit, 64)),
		max:   capped,
	}
}

// Add кладёт диагностику, если лимит не исчерпан.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether any diagnostic fails the unit.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity.Fails()
	})
}

func (b *Bag) HasWarnings() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity >= SevWarning
	})
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает внутренний срез, не модифицировать.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other, growing the limit to fit.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > int(b.max) {
		capped, err := safecast.Conv[uint16](total)
		if err != nil {
			capped = math.MaxUint16
		}
		b.max = capped
	}
	b.items = append(b.items, other.items...)
}

// Sort orders by template file and position; at one position errors come
// first, then by code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start.Offset, y.Primary.Start.Offset),
			cmp.Compare(x.Primary.End.Offset, y.Primary.End.Offset),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

type locKey struct {
	code       Code
	sev        Severity
	file       string
	start, end uint32
}

// Dedup keeps the first diagnostic per code, severity and primary range.
func (b *Bag) Dedup() {
	seen := make(map[locKey]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := locKey{d.Code, d.Severity, d.Primary.File, d.Primary.Start.Offset, d.Primary.End.Offset}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}

// First returns the first failing diagnostic, or the first one at all.
func (b *Bag) First() (Diagnostic, bool) {
	if i := slices.IndexFunc(b.items, func(d Diagnostic) bool { return d.Severity.Fails() }); i >= 0 {
		return b.items[i], true
	}
	if len(b.items) > 0 {
		return b.items[0], true
	}
	return Diagnostic{}, false
}
