package pipeline

import (
	"github.com/san-kum/ndviplay/internal/colormap"
	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/index"
	"github.com/san-kum/ndviplay/internal/normalize"
)

type FilterKind int

const (
	// IndexFilter produces the raw index field.
	IndexFilter FilterKind = iota
	// ColormapFilter produces a false-color rendering of the globally
	// normalized index.
	ColormapFilter
)

func (k FilterKind) String() string {
	switch k {
	case IndexFilter:
		return "index"
	case ColormapFilter:
		return "colormap"
	}
	return "unknown"
}

// Filter is one of the two fixed frame transforms.
type Filter struct {
	Kind FilterKind
}

// Output carries the result of a transform. Index is always populated;
// Color only by ColormapFilter.
type Output struct {
	Index *frame.Field
	Color *frame.Color
}

func (f Filter) Transform(img *frame.Color) Output {
	out := Output{Index: index.Calculate(img)}
	if f.Kind == ColormapFilter {
		out.Color = colormap.Apply(normalize.MinMax(out.Index))
	}
	return out
}
