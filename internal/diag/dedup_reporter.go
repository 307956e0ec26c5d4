package diag

import "unikit/internal/source"

// DedupReporter forwards a diagnostic once per code, severity, primary
// range and message. All directives of one CLI unit share a location, so
// repeats collapse here.
type DedupReporter struct {
	next Reporter
	seen map[reportKey]struct{}
}

type reportKey struct {
	locKey
	msg string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[reportKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Location, msg string, notes []Note) {
	if r == nil {
		return
	}
	k := reportKey{
		locKey: locKey{code, sev, primary.File, primary.Start.Offset, primary.End.Offset},
		msg:    msg,
	}
	if _, dup := r.seen[k]; dup {
		return
	}
	r.seen[k] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
