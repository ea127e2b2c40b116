package metrics

import (
	"math"

	"github.com/san-kum/ndviplay/internal/frame"
)

// Mean is the average index of the most recent frame.
type Mean struct {
	name  string
	value float64
}

func NewMean() *Mean {
	return &Mean{name: "mean"}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(f *frame.Field, r frame.Region) {
	m.value = f.Mean(f.Bounds())
}

func (m *Mean) Value() float64 { return m.value }

func (m *Mean) Reset() { m.value = 0 }

// RegionMean is the average index inside the baseline region, 0 while no
// region is set.
type RegionMean struct {
	name  string
	value float64
}

func NewRegionMean() *RegionMean {
	return &RegionMean{name: "region_mean"}
}

func (m *RegionMean) Name() string { return m.name }

func (m *RegionMean) Observe(f *frame.Field, r frame.Region) {
	if !r.IsSet() {
		m.value = 0
		return
	}
	m.value = f.Mean(r.Rect)
}

func (m *RegionMean) Value() float64 { return m.value }

func (m *RegionMean) Reset() { m.value = 0 }

// Spread is max - min of the most recent frame.
type Spread struct {
	name  string
	value float64
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(f *frame.Field, r frame.Region) {
	lo, hi := f.MinMax()
	s.value = hi - lo
}

func (s *Spread) Value() float64 { return s.value }

func (s *Spread) Reset() { s.value = 0 }

// Drift is the largest absolute change of the frame mean relative to the
// first observed frame.
type Drift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewDrift() *Drift {
	return &Drift{name: "drift"}
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(f *frame.Field, r frame.Region) {
	mean := f.Mean(f.Bounds())
	if d.samples == 0 {
		d.initial = mean
	}
	d.samples++
	d.maxDrift = math.Max(d.maxDrift, math.Abs(mean-d.initial))
}

func (d *Drift) Value() float64 { return d.maxDrift }

func (d *Drift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
