package viz

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/san-kum/ndviplay/internal/frame"
)

const halfBlock = "▀"

// Preview is a color frame scaled to fit a grid of terminal cells.
type Preview struct {
	Img    *image.RGBA
	Source image.Rectangle
}

// NewPreview fits img into cols x rows cells keeping its aspect ratio.
// Each cell covers two pixel rows.
func NewPreview(img *frame.Color, cols, rows int) *Preview {
	if img.Empty() || cols <= 0 || rows <= 0 {
		return &Preview{Img: image.NewRGBA(image.Rectangle{}), Source: img.Bounds()}
	}
	w, h := fit(img.Width, img.Height, cols, rows*2)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img.ToImage(), img.Bounds(), draw.Src, nil)
	return &Preview{Img: dst, Source: img.Bounds()}
}

// fit scales (w, h) to the largest size inside (maxW, maxH), at least 1x1.
func fit(w, h, maxW, maxH int) (int, int) {
	if w*maxH > h*maxW {
		h = max(1, h*maxW/w)
		w = maxW
	} else {
		w = max(1, w*maxH/h)
		h = maxH
	}
	return w, h
}

func (p *Preview) Cols() int { return p.Img.Bounds().Dx() }

// Rows is the number of terminal rows, rounding an odd pixel row up.
func (p *Preview) Rows() int { return (p.Img.Bounds().Dy() + 1) / 2 }

// ToSource maps a rectangle of preview cells onto source pixel coordinates.
func (p *Preview) ToSource(cells image.Rectangle) image.Rectangle {
	pw, ph := p.Img.Bounds().Dx(), p.Img.Bounds().Dy()
	if pw == 0 || ph == 0 {
		return image.Rectangle{}
	}
	sw, sh := p.Source.Dx(), p.Source.Dy()
	r := image.Rect(
		cells.Min.X*sw/pw,
		cells.Min.Y*2*sh/ph,
		(cells.Max.X*sw+pw-1)/pw,
		(cells.Max.Y*2*sh+ph-1)/ph,
	)
	return r.Intersect(p.Source)
}

func hex(img *image.RGBA, x, y int) lipgloss.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return lipgloss.Color("#000000")
	}
	c, _ := colorful.MakeColor(img.RGBAAt(x, y))
	return lipgloss.Color(c.Hex())
}

// Render draws the preview. Cells inside sel are shown reversed and the
// cell at cursor is marked; pass an empty sel and a negative cursor for a
// plain rendering.
func (p *Preview) Render(sel image.Rectangle, cursor image.Point) string {
	var b strings.Builder
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Cols(); col++ {
			style := lipgloss.NewStyle().
				Foreground(hex(p.Img, col, row*2)).
				Background(hex(p.Img, col, row*2+1))
			cell := image.Point{col, row}
			switch {
			case cell == cursor:
				b.WriteString(style.Foreground(lipgloss.Color("#ffffff")).Bold(true).Render("+"))
			case cell.In(sel):
				b.WriteString(style.Reverse(true).Render(halfBlock))
			default:
				b.WriteString(style.Render(halfBlock))
			}
		}
		if row < p.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
