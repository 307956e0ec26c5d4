package stacktrace

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// ResolvedFrame is one diagnostic after remapping. Line and Column are
// 1-based; File is empty for messages without a location.
type ResolvedFrame struct {
	File     string
	Line     int
	Column   int
	Message  string
	Severity Severity
	Code     string // optional code frame
}

func (f ResolvedFrame) HasLocation() bool {
	return f.File != ""
}

// Introducer opens the location line of a frame. Only a line whose text,
// after leading spaces and tabs, starts with Introducer counts: Frame output
// has exactly one such line, Message output has none. Message and code
// lines that would start with it are escaped with a no-break space.
const Introducer = "at "

// Style renders frames under the Introducer contract.
type Style interface {
	ID() string
	Frame(f ResolvedFrame) string
	Message(sev Severity, msg string) string
}

var ErrUnknownStyle = errors.New("unknown frame style")

const (
	StyleHBuilder = "hbuilder"
	StylePlain    = "plain"
	StyleTerminal = "terminal"
)

var (
	stylesMu sync.RWMutex
	styles   = map[string]Style{}
)

func init() {
	RegisterStyle(hbuilderStyle{})
	RegisterStyle(plainStyle{})
	RegisterStyle(terminalStyle{})
}

// RegisterStyle adds s to the registry, replacing a style with the same id.
func RegisterStyle(s Style) {
	stylesMu.Lock()
	defer stylesMu.Unlock()
	styles[s.ID()] = s
}

// LookupStyle returns the style registered under id; "" means hbuilder.
func LookupStyle(id string) (Style, error) {
	if id == "" {
		id = StyleHBuilder
	}
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	s, ok := styles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
	}
	return s, nil
}

// StyleIDs lists registered styles in sorted order.
func StyleIDs() []string {
	stylesMu.RLock()
	defer stylesMu.RUnlock()
	ids := make([]string, 0, len(styles))
	for id := range styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Format renders frames with the style id, one frame per block, in order.
func Format(frames []ResolvedFrame, id string) (string, error) {
	s, err := LookupStyle(id)
	if err != nil {
		return "", err
	}
	return render(frames, s), nil
}

func render(frames []ResolvedFrame, s Style) string {
	parts := make([]string, 0, len(frames))
	for _, f := range frames {
		if f.HasLocation() {
			parts = append(parts, s.Frame(f))
		} else {
			parts = append(parts, s.Message(f.Severity, f.Message))
		}
	}
	return strings.Join(parts, "\n")
}

// CountIntroducers counts the frame location lines in rendered output.
func CountIntroducers(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), Introducer) {
			n++
		}
	}
	return n
}

// guardText escapes line-leading introducers in user text.
func guardText(text string) string {
	if !strings.Contains(text, Introducer) {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		rest := strings.TrimLeft(line, " \t")
		if after, ok := strings.CutPrefix(rest, Introducer); ok {
			lines[i] = line[:len(line)-len(rest)] + "at\u00a0" + after
		}
	}
	return strings.Join(lines, "\n")
}

func location(f ResolvedFrame) string {
	return fmt.Sprintf("%s:%d:%d", f.File, f.Line, f.Column)
}

// hbuilderStyle is what the IDE console links on.
type hbuilderStyle struct{}

func (hbuilderStyle) ID() string { return StyleHBuilder }

func (s hbuilderStyle) Frame(f ResolvedFrame) string {
	var sb strings.Builder
	sb.WriteString(s.Message(f.Severity, f.Message))
	sb.WriteString("\nat ")
	sb.WriteString(location(f))
	if f.Code != "" {
		sb.WriteByte('\n')
		sb.WriteString(guardText(f.Code))
	}
	return sb.String()
}

func (hbuilderStyle) Message(sev Severity, msg string) string {
	return sev.String() + ": " + guardText(msg)
}

// plainStyle mimics node's stack output.
type plainStyle struct{}

func (plainStyle) ID() string { return StylePlain }

func (plainStyle) Frame(f ResolvedFrame) string {
	return guardText(f.Message) + "\n    at " + location(f)
}

func (plainStyle) Message(_ Severity, msg string) string {
	return guardText(msg)
}

var (
	errorBadge   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warningBadge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	locColor     = color.New(color.FgCyan)
)

// terminalStyle is for people reading the log in a shell.
type terminalStyle struct{}

func (terminalStyle) ID() string { return StyleTerminal }

func (s terminalStyle) Frame(f ResolvedFrame) string {
	out := s.Message(f.Severity, f.Message) + "\n  at " + locColor.Sprint(location(f))
	if f.Code != "" {
		out += "\n" + guardText(f.Code)
	}
	return out
}

func (terminalStyle) Message(sev Severity, msg string) string {
	badge := errorBadge
	if sev == SevWarning {
		badge = warningBadge
	}
	return badge.Render(sev.String()) + " " + guardText(msg)
}
