package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/ndviplay/internal/frame"
)

func field(values ...float64) *frame.Field {
	f := frame.NewField(len(values), 1)
	copy(f.Data, values)
	return f
}

func TestMean(t *testing.T) {
	m := NewMean()
	m.Observe(field(0.2, 0.4, 0.6), frame.Unset)
	if math.Abs(m.Value()-0.4) > 1e-12 {
		t.Errorf("expected mean 0.4, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestRegionMean(t *testing.T) {
	m := NewRegionMean()
	f := field(1, 0.5, -1)

	m.Observe(f, frame.Unset)
	if m.Value() != 0 {
		t.Errorf("expected 0 without region, got %f", m.Value())
	}

	m.Observe(f, frame.NewRegion(0, 0, 2, 1))
	if m.Value() != 0.75 {
		t.Errorf("expected 0.75, got %f", m.Value())
	}
}

func TestSpread(t *testing.T) {
	s := NewSpread()
	s.Observe(field(-0.5, 0.25, 0.5), frame.Unset)
	if s.Value() != 1 {
		t.Errorf("expected spread 1, got %f", s.Value())
	}
}

func TestDrift(t *testing.T) {
	d := NewDrift()
	d.Observe(field(0.1, 0.1), frame.Unset)
	d.Observe(field(0.5, 0.5), frame.Unset)
	d.Observe(field(0.2, 0.2), frame.Unset)

	if math.Abs(d.Value()-0.4) > 1e-12 {
		t.Errorf("expected max drift 0.4, got %f", d.Value())
	}

	d.Reset()
	if d.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestSnapshot(t *testing.T) {
	ms := Defaults()
	for _, m := range ms {
		m.Observe(field(0, 1), frame.Unset)
	}
	snap := Snapshot(ms)
	for _, name := range []string{"mean", "region_mean", "spread", "drift"} {
		if _, ok := snap[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
}

func TestHistoryCapacity(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Push(float64(i))
	}
	got := h.Values()
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("expected [2 3 4], got %v", got)
	}
}

func TestHistogram(t *testing.T) {
	f := field(-1, -0.9, 0, 0.2, 1, 3)

	bins := Histogram(f, 4, -1, 1)
	expected := []float64{2, 0, 2, 2}
	for i := range expected {
		if bins[i] != expected[i] {
			t.Errorf("bin %d: expected %.0f, got %.0f", i, expected[i], bins[i])
		}
	}

	bins = Histogram(f, 3, 1, 1)
	if bins[0] != 6 {
		t.Errorf("expected everything in the first bin for an empty range, got %v", bins)
	}
}
