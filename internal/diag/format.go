package diag

import (
	"fmt"
	"strings"
)

// Format renders one diagnostic as a single compiler-style line followed by
// indented notes.
//
//	pages/index.vue:3:7: ERROR [X3001]: Error parsing JavaScript expression: Unexpected token
func Format(d Diagnostic) string {
	var sb strings.Builder
	if d.HasLocation() {
		sb.WriteString(d.Primary.String())
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%s [%s]: %s", d.Severity, d.Code.ID(), d.Message)
	for _, n := range d.Notes {
		sb.WriteString("\n  note: ")
		if n.Loc.Start.IsValid() {
			sb.WriteString(n.Loc.String())
			sb.WriteString(": ")
		}
		sb.WriteString(n.Msg)
	}
	return sb.String()
}

// FormatBag renders every diagnostic in bag order, one per line.
func FormatBag(b *Bag) string {
	if b == nil || b.Len() == 0 {
		return ""
	}
	lines := make([]string, 0, b.Len())
	for _, d := range b.Items() {
		lines = append(lines, Format(d))
	}
	return strings.Join(lines, "\n") + "\n"
}
