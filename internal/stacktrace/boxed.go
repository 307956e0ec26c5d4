package stacktrace

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BoxedError is one `,-[file:line:col]` box from the UTS transpiler.
type BoxedError struct {
	Message string
	File    string
	Line    int
	Column  int
	// Code is the excerpt inside the box: numbered lines and caret rows.
	Code string
	// CaretLine/CaretColumn locate the first caret row (1-based, in runes
	// of the source line); zero when the box has no caret.
	CaretLine   int
	CaretColumn int
	CaretWidth  int
}

var (
	boxHeaderRE = regexp.MustCompile(`^\s*,-\[(.+):(\d+):(\d+)\]\s*$`)
	boxSourceRE = regexp.MustCompile(`^\s*(\d*)\s*\|(.*)$`)
	boxCaretRE  = regexp.MustCompile(`^\s*[:·](.*)$`)
	boxFooterRE = regexp.MustCompile("^\\s*`-+\\s*$")
	msgMarkerRE = regexp.MustCompile(`^(?:(?:Error|error):\s*|[x×]\s+)`)
)

const displayTabWidth = 4

// ParseBoxed extracts every box in blob. The message of a box is the free
// text between the previous box and its header, with `Error:`/`x` markers
// removed.
func ParseBoxed(blob string, replaceTabsWithSpace bool) []BoxedError {
	var (
		out      []BoxedError
		pending  []string
		cur      *BoxedError
		code     []string
		lastLine int
		lastText string
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Code = strings.Join(code, "\n")
		out = append(out, *cur)
		cur, code = nil, nil
	}

	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimRight(line, "\r")
		if m := boxHeaderRE.FindStringSubmatch(line); m != nil {
			flush()
			l, okL := atoi(m[2])
			c, okC := atoi(m[3])
			if !okL || !okC {
				pending = append(pending, line)
				continue
			}
			cur = &BoxedError{Message: boxMessage(pending), File: strings.TrimSpace(m[1]), Line: l, Column: c}
			pending = pending[:0]
			lastLine, lastText = 0, ""
			continue
		}
		if cur == nil {
			pending = append(pending, line)
			continue
		}
		switch {
		case boxFooterRE.MatchString(line):
			flush()
		case boxSourceRE.MatchString(line):
			m := boxSourceRE.FindStringSubmatch(line)
			if n, ok := atoi(m[1]); ok && m[1] != "" {
				lastLine = n
				lastText = strings.TrimPrefix(m[2], " ")
			}
			code = append(code, strings.TrimRight(line, " "))
		case boxCaretRE.MatchString(line):
			m := boxCaretRE.FindStringSubmatch(line)
			if cur.CaretLine == 0 && lastLine > 0 {
				if col, width := caretPosition(strings.TrimPrefix(m[1], " "), lastText, replaceTabsWithSpace); col > 0 {
					cur.CaretLine, cur.CaretColumn, cur.CaretWidth = lastLine, col, width
				}
			}
			code = append(code, strings.TrimRight(line, " "))
		default:
			flush()
			pending = append(pending, line)
		}
	}
	flush()
	return out
}

func boxMessage(lines []string) string {
	var parts []string
	for _, l := range lines {
		l = strings.TrimSpace(l)
		for {
			stripped := msgMarkerRE.ReplaceAllString(l, "")
			if stripped == l {
				break
			}
			l = stripped
		}
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, "\n")
}

// caretPosition переводит отступ каретки (в колонках экрана) в колонку
// исходной строки.
func caretPosition(row, src string, replaceTabs bool) (col, width int) {
	idx := strings.IndexByte(row, '^')
	if idx < 0 {
		return 0, 0
	}
	offset := runewidth.StringWidth(row[:idx])
	width = len(row[idx:]) - len(strings.TrimLeft(row[idx:], "^"))

	tab := displayTabWidth
	if replaceTabs {
		tab = 1
	}
	seen := 0
	col = 1
	for _, r := range src {
		if seen >= offset {
			break
		}
		if r == '\t' {
			seen += tab
		} else {
			seen += runewidth.RuneWidth(r)
		}
		col++
	}
	return col, width
}
