package stacktrace

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Severity of a toolchain diagnostic.
type Severity uint8

const (
	SevWarning Severity = iota + 1
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity accepts warning/error; note is folded into warning.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "warn", "w", "note":
		return SevWarning, true
	case "error", "err", "e":
		return SevError, true
	}
	return 0, false
}

// RawRecord is one diagnostic as the Kotlin compiler daemon reports it.
type RawRecord struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// Record is a validated diagnostic. Line and Column are 1-based, zero when
// unknown.
type Record struct {
	Type    Severity
	Message string
	File    string
	Line    int
	Column  int
}

// HasLocation reports whether the record points into a file.
func (r Record) HasLocation() bool {
	return r.File != "" && r.Line > 0
}

// ValidateRecords keeps records typed warning or error, in input order.
func ValidateRecords(raw []RawRecord) []Record {
	out := make([]Record, 0, len(raw))
	for _, r := range raw {
		var sev Severity
		switch strings.ToLower(r.Type) {
		case "warning":
			sev = SevWarning
		case "error":
			sev = SevError
		default:
			continue
		}
		out = append(out, Record{
			Type:    sev,
			Message: r.Message,
			File:    r.File,
			Line:    max(r.Line, 0),
			Column:  max(r.Column, 0),
		})
	}
	return out
}

// DecodeRecords reads a JSON array of records.
func DecodeRecords(r io.Reader) ([]RawRecord, error) {
	var raw []RawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return raw, nil
}
