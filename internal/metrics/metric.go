// Package metrics tracks per-frame statistics of index fields.
package metrics

import "github.com/san-kum/ndviplay/internal/frame"

// Metric observes one index field per cycle.
type Metric interface {
	Name() string
	Observe(f *frame.Field, r frame.Region)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported by the playback status.
func Defaults() []Metric {
	return []Metric{NewMean(), NewRegionMean(), NewSpread(), NewDrift()}
}

// Snapshot collects the current value of every metric by name.
func Snapshot(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
