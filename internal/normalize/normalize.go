// Package normalize rescales index and difference fields into the value
// domain expected by the false-color encoder.
//
// Two modes exist. Global mode stretches a field to span exactly [0, 1]
// using its own extremes. Baseline mode amplifies the deviation from a
// reference: for index fields the reference is the mean over the baseline
// region, for difference fields it is zero.
//
// Outputs are not bounded; the encoder clamps.
package normalize

import (
	"github.com/san-kum/ndviplay/internal/frame"
)

// Gain applied to deviations in baseline mode.
const Gain = 2.0

type Mode int

const (
	Global Mode = iota
	Baseline
)

func (m Mode) String() string {
	if m == Baseline {
		return "baseline"
	}
	return "global"
}

// ModeFor selects the mode implied by the current baseline region.
func ModeFor(r frame.Region) Mode {
	if r.IsSet() {
		return Baseline
	}
	return Global
}

// MinMax linearly maps the minimum of f to 0 and the maximum to 1. A
// constant field maps entirely to 0.
func MinMax(f *frame.Field) *frame.Field {
	out := frame.NewField(f.Width, f.Height)
	lo, hi := f.MinMax()
	span := hi - lo
	if span == 0 {
		return out
	}
	scale := 1 / span
	for i, v := range f.Data {
		out.Data[i] = (v - lo) * scale
	}
	return out
}

// Relative returns (v - ref) * Gain for every pixel.
func Relative(f *frame.Field, ref float64) *frame.Field {
	out := frame.NewField(f.Width, f.Height)
	for i, v := range f.Data {
		out.Data[i] = (v - ref) * Gain
	}
	return out
}

// Index normalizes an index field. With r set, every pixel of the full
// frame is expressed relative to the mean over r.
func Index(f *frame.Field, r frame.Region) *frame.Field {
	if ModeFor(r) == Baseline {
		return Relative(f, f.Mean(r.Rect))
	}
	return MinMax(f)
}

// Difference normalizes a difference field. Baseline mode only applies the
// gain since a difference is already relative.
func Difference(d *frame.Field, r frame.Region) *frame.Field {
	if ModeFor(r) == Baseline {
		return Relative(d, 0)
	}
	return MinMax(d)
}
