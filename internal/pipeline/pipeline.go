// Package pipeline runs one display cycle: index calculation, frame
// difference, normalization and false-color encoding.
package pipeline

import (
	"github.com/san-kum/ndviplay/internal/colormap"
	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/normalize"
)

// Result holds everything produced for one frame.
type Result struct {
	Index     *frame.Field
	Diff      *frame.Field
	IndexView *frame.Color
	DiffView  *frame.Color
	Mode      normalize.Mode
}

// Process computes both display frames for img. prev is the index field of
// the previous cycle and may be nil.
func Process(img *frame.Color, prev *frame.Field, r frame.Region) Result {
	idx := Filter{Kind: IndexFilter}.Transform(img).Index
	diff := Difference(idx, prev)
	return Result{
		Index:     idx,
		Diff:      diff,
		IndexView: colormap.Apply(normalize.Index(idx, r)),
		DiffView:  colormap.Apply(normalize.Difference(diff, r)),
		Mode:      normalize.ModeFor(r),
	}
}
