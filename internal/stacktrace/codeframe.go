package stacktrace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

const codeFrameContext = 2

// CodeFrame renders lines around line:column of content with a gutter and
// a caret under column (both 1-based).
func CodeFrame(content string, line, column int, replaceTabsWithSpace bool) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if line <= 0 || line > len(lines) {
		return ""
	}
	first := max(line-codeFrameContext, 1)
	last := min(line+codeFrameContext, len(lines))
	width := len(strconv.Itoa(last))

	var sb strings.Builder
	for n := first; n <= last; n++ {
		text := lines[n-1]
		display := text
		if replaceTabsWithSpace {
			display = strings.ReplaceAll(text, "\t", " ")
		}
		marker := " "
		if n == line {
			marker = ">"
		}
		fmt.Fprintf(&sb, "%s %*d | %s\n", marker, width, n, display)
		if n == line {
			pad := caretPad(text, column, replaceTabsWithSpace)
			fmt.Fprintf(&sb, "  %s | %s^\n", strings.Repeat(" ", width), pad)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// caretPad keeps tabs from the source line so the caret lines up under
// them in terminals.
func caretPad(text string, column int, replaceTabsWithSpace bool) string {
	var sb strings.Builder
	col := 1
	for _, r := range text {
		if col >= column {
			break
		}
		switch {
		case r == '\t' && !replaceTabsWithSpace:
			sb.WriteByte('\t')
		default:
			sb.WriteString(strings.Repeat(" ", max(runewidth.RuneWidth(r), 1)))
		}
		col++
	}
	return sb.String()
}
