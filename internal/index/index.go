// Package index computes the per-pixel vegetation index of a color frame.
package index

import "github.com/san-kum/ndviplay/internal/frame"

// Value is (c - a) / (c + a), or 0 when the denominator vanishes.
func Value(a, c uint8) float64 {
	num := float64(c) - float64(a)
	den := float64(c) + float64(a)
	if den == 0 {
		return 0
	}
	return num / den
}

// Calculate produces an index field with the dimensions of img.
func Calculate(img *frame.Color) *frame.Field {
	if img == nil {
		return frame.NewField(0, 0)
	}
	out := frame.NewField(img.Width, img.Height)
	for i := range out.Data {
		p := img.Pix[i*3 : i*3+3]
		out.Data[i] = Value(p[0], p[2])
	}
	return out
}
