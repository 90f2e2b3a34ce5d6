package metric

import (
	"testing"
)

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry

	// Must not panic.
	r.AddOps(KindRead, 10)
	r.AddMaps(1)
	r.SetResidentPeak(1024)
}

func TestAddOps(t *testing.T) {
	r := NewRegistry()
	r.AddOps(KindWrite, 100)
	r.AddOps(KindWrite, 50)
	r.AddOps(KindRead, 7)

	if got := counterValue(t, r, "cmapbench_ops_total", "write"); got != 150 {
		t.Errorf("write ops = %v, want 150", got)
	}
	if got := counterValue(t, r, "cmapbench_ops_total", "read"); got != 7 {
		t.Errorf("read ops = %v, want 7", got)
	}
}

func TestSetResidentPeak(t *testing.T) {
	r := NewRegistry()
	r.SetResidentPeak(4096)

	mfs, err := r.reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "cmapbench_resident_peak_bytes" {
			if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 4096 {
				t.Errorf("resident peak = %v, want 4096", got)
			}
			return
		}
	}
	t.Fatal("cmapbench_resident_peak_bytes not gathered")
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	if r.Handler() == nil {
		t.Fatal("Handler() returned nil")
	}
}

func counterValue(t *testing.T, r *Registry, name, kind string) float64 {
	t.Helper()

	mfs, err := r.reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "kind" && l.GetValue() == kind {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{kind=%q} not gathered", name, kind)
	return 0
}
