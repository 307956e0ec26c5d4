package source

import "fmt"

// Position is a point in a template or generated file.
// Line and Column are 1-based, Offset is 0-based in bytes.
type Position struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// IsValid reports whether the position carries a real line.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Location describes where a template node came from.
type Location struct {
	File   string
	Start  Position
	End    Position
	Source string // исходный текст узла
}

// LocStub is the location attached to synthesized nodes.
var LocStub = Location{
	Start: Position{Offset: 0, Line: 1, Column: 1},
	End:   Position{Offset: 0, Line: 1, Column: 1},
}

// IsStub reports whether l is the synthesized location.
func (l Location) IsStub() bool {
	return l.File == "" && l.Source == "" && l.Start == LocStub.Start && l.End == LocStub.End
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Start.Line, l.Start.Column)
}

// Advance returns the position reached after consuming text starting at p.
func (p Position) Advance(text string) Position {
	for _, r := range text {
		if r == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += uint32(len(text))
	return p
}
