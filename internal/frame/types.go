package frame

import (
	"image"
	"image/color"
	"math"
)

// Color is a decoded three-channel frame. Pix holds Width*Height*3 bytes in
// A, B, C order.
type Color struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewColor(w, h int) *Color {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Color{Width: w, Height: h, Pix: make([]uint8, w*h*3)}
}

func (c *Color) Empty() bool {
	return c == nil || c.Width == 0 || c.Height == 0
}

func (c *Color) Bounds() image.Rectangle {
	if c == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, c.Width, c.Height)
}

func (c *Color) At(x, y int) (a, b, cc uint8) {
	i := (y*c.Width + x) * 3
	return c.Pix[i], c.Pix[i+1], c.Pix[i+2]
}

func (c *Color) Set(x, y int, a, b, cc uint8) {
	i := (y*c.Width + x) * 3
	c.Pix[i], c.Pix[i+1], c.Pix[i+2] = a, b, cc
}

// FromImage converts any decoded image into a Color frame, mapping blue to
// channel A, green to B and red to C.
func FromImage(img image.Image) *Color {
	if img == nil {
		return NewColor(0, 0)
	}
	r := img.Bounds()
	out := NewColor(r.Dx(), r.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			cr, cg, cb, _ := img.At(r.Min.X+x, r.Min.Y+y).RGBA()
			out.Set(x, y, uint8(cb>>8), uint8(cg>>8), uint8(cr>>8))
		}
	}
	return out
}

// ToImage returns an RGBA copy suitable for display backends.
func (c *Color) ToImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	if c.Empty() {
		return img
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			a, b, cc := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: cc, G: b, B: a, A: 255})
		}
	}
	return img
}

// Field is a single-channel floating point frame. Index frames hold values
// in [-1, 1]; difference frames are unbounded.
type Field struct {
	Width  int
	Height int
	Data   []float64
}

func NewField(w, h int) *Field {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Field{Width: w, Height: h, Data: make([]float64, w*h)}
}

func (f *Field) At(x, y int) float64 {
	return f.Data[y*f.Width+x]
}

func (f *Field) Set(x, y int, v float64) {
	f.Data[y*f.Width+x] = v
}

func (f *Field) Bounds() image.Rectangle {
	if f == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, f.Width, f.Height)
}

// SameSize reports whether both fields have identical pixel dimensions.
func (f *Field) SameSize(other *Field) bool {
	if f == nil || other == nil {
		return false
	}
	return f.Width == other.Width && f.Height == other.Height
}

func (f *Field) Clone() *Field {
	c := NewField(f.Width, f.Height)
	copy(c.Data, f.Data)
	return c
}

// MinMax returns the extremes of the field. An empty field reports (0, 0).
func (f *Field) MinMax() (lo, hi float64) {
	if f == nil || len(f.Data) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range f.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Mean averages the pixels inside r clipped to the field bounds. An empty
// intersection averages to 0.
func (f *Field) Mean(r image.Rectangle) float64 {
	r = r.Intersect(f.Bounds())
	if r.Empty() {
		return 0
	}
	sum := 0.0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.Data[y*f.Width : (y+1)*f.Width]
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += row[x]
		}
	}
	return sum / float64(r.Dx()*r.Dy())
}

// Region is the operator-chosen baseline rectangle. The zero value is unset.
type Region struct {
	Rect image.Rectangle
}

// Unset is the region that selects global normalization.
var Unset = Region{}

// NewRegion builds a region from an origin and a size. A zero or negative
// size yields Unset.
func NewRegion(x, y, w, h int) Region {
	if w <= 0 || h <= 0 {
		return Unset
	}
	return Region{Rect: image.Rect(x, y, x+w, y+h)}
}

// RegionFromRect canonicalizes r and returns Unset for degenerate input.
func RegionFromRect(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return Unset
	}
	return Region{Rect: r}
}

func (r Region) IsSet() bool {
	return !r.Rect.Empty()
}

func (r Region) String() string {
	if !r.IsSet() {
		return "unset"
	}
	return r.Rect.String()
}
