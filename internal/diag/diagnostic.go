package diag

import (
	"unikit/internal/source"
)

type Note struct {
	Loc source.Location
	Msg string
}

// Diagnostic is one finding of the codegen engine or the expression parser.
// Primary has zero Line when no location is known.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Location
	Notes    []Note
}

// HasLocation reports whether Primary points at real source.
func (d Diagnostic) HasLocation() bool {
	return d.Primary.Start.IsValid()
}
