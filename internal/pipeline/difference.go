package pipeline

import "github.com/san-kum/ndviplay/internal/frame"

// Difference returns cur - prev per pixel. A missing previous frame, or one
// with different dimensions, is treated as all zeros.
func Difference(cur, prev *frame.Field) *frame.Field {
	if !cur.SameSize(prev) {
		return cur.Clone()
	}
	out := frame.NewField(cur.Width, cur.Height)
	for i, v := range cur.Data {
		out.Data[i] = v - prev.Data[i]
	}
	return out
}
