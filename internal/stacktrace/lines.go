package stacktrace

import (
	"regexp"
	"strconv"
	"strings"
)

// matcher recognises one line format. Matchers share no state.
type matcher struct {
	name string
	re   *regexp.Regexp
	// индексы групп; 0 - группы нет
	file, line, col, sev, msg int
}

// Порядок важен: более специфичные форматы первыми, первое совпадение
// выигрывает.
var lineMatchers = []matcher{
	{
		name: "file:line:col",
		re:   regexp.MustCompile(`^(.+?):(\d+):(\d+):\s*(error|warning|note):\s*(.*)$`),
		file: 1, line: 2, col: 3, sev: 4, msg: 5,
	},
	{
		name: "file:line",
		re:   regexp.MustCompile(`^(.+?):(\d+):\s*(error|warning):\s*(.*)$`),
		file: 1, line: 2, sev: 3, msg: 4,
	},
	{
		name: "kotlinc",
		re:   regexp.MustCompile(`^(e|w):\s+(?:file://)?(.+?):(\d+):(\d+)\s+(.*)$`),
		sev:  1, file: 2, line: 3, col: 4, msg: 5,
	},
}

func (m *matcher) match(line string) (Record, bool) {
	g := m.re.FindStringSubmatch(line)
	if g == nil {
		return Record{}, false
	}
	sev, ok := ParseSeverity(g[m.sev])
	if !ok {
		return Record{}, false
	}
	rec := Record{Type: sev, File: g[m.file], Message: strings.TrimSpace(g[m.msg])}
	if rec.Line, ok = atoi(g[m.line]); !ok {
		return Record{}, false
	}
	if m.col > 0 {
		if rec.Column, ok = atoi(g[m.col]); !ok {
			return Record{}, false
		}
	}
	return rec, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseLines extracts one record per recognised line, in input order.
// Other lines are dropped.
func ParseLines(blob string) []Record {
	var out []Record
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		for i := range lineMatchers {
			if rec, ok := lineMatchers[i].match(line); ok {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
