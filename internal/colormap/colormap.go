// Package colormap encodes scalar fields with a diverging false-color scale:
// cool for negative values, bright for values near zero, warm for positive.
package colormap

import (
	"math"

	"github.com/san-kum/ndviplay/internal/frame"
)

// Breakpoints of the piecewise-linear ramps.
const (
	knee = 0.5
	edge = 1.0
)

// Encode maps a single value to the three output channels.
func Encode(v float64) (a, b, c uint8) {
	if math.IsNaN(v) {
		v = 0
	}
	return cool(v), mid(v), warm(v)
}

func warm(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v >= knee:
		return 255
	}
	return channel(v / knee * 255)
}

func mid(v float64) uint8 {
	switch {
	case v < -knee:
		return channel((v + edge) / knee * 255)
	case v > knee:
		return channel(255 - (v-knee)/knee*255)
	}
	return 255
}

func cool(v float64) uint8 {
	switch {
	case v > 0:
		return 0
	case v <= -knee:
		return 255
	}
	return channel(v * -1 / knee * 255)
}

// channel clamps to [0, 255] and truncates.
func channel(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}

// Apply encodes every value of f into a new color frame of the same size.
func Apply(f *frame.Field) *frame.Color {
	if f == nil {
		return frame.NewColor(0, 0)
	}
	out := frame.NewColor(f.Width, f.Height)
	for i, v := range f.Data {
		a, b, c := Encode(v)
		out.Pix[i*3], out.Pix[i*3+1], out.Pix[i*3+2] = a, b, c
	}
	return out
}
