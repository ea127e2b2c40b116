package viz

import (
	"image"

	"github.com/san-kum/ndviplay/internal/frame"
)

// picker tracks an in-progress region selection in preview cell units.
type picker struct {
	window   string
	preview  *Preview
	cursor   image.Point
	anchor   image.Point
	anchored bool
}

func newPicker(window string, p *Preview) *picker {
	return &picker{
		window:  window,
		preview: p,
		cursor:  image.Point{p.Cols() / 2, p.Rows() / 2},
	}
}

func (p *picker) move(dx, dy int) {
	p.cursor.X = clamp(p.cursor.X+dx, 0, p.preview.Cols()-1)
	p.cursor.Y = clamp(p.cursor.Y+dy, 0, p.preview.Rows()-1)
}

func (p *picker) setAnchor() {
	p.anchor = p.cursor
	p.anchored = true
}

// cells is the inclusive rectangle between anchor and cursor, empty until
// an anchor is set.
func (p *picker) cells() image.Rectangle {
	if !p.anchored {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p.anchor, Max: p.cursor}.Canon()
	r.Max = r.Max.Add(image.Point{1, 1})
	return r
}

func (p *picker) region() frame.Region {
	return frame.RegionFromRect(p.preview.ToSource(p.cells()))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
