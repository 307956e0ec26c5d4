package observ

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load config")
	tm.End(idx, "")
	err := tm.Measure("remap", func() error { return errors.New("no map") })
	if err == nil || err.Error() != "no map" {
		t.Fatalf("Measure returned %v", err)
	}
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("got %d phases", len(report.Phases))
	}
	if report.Phases[1].Name != "remap" || report.Phases[1].Note != "no map" {
		t.Errorf("phase = %+v", report.Phases[1])
	}
	summary := tm.Summary()
	for _, want := range []string{"timings:", "load config", "remap", "// no map", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary lacks %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Errorf("unexpected report %+v", r)
	}
}
