package gui

import (
	"fmt"
	"image"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// selection is a mouse drag in screen coordinates.
type selection struct {
	pane     *pane
	from, to rl.Vector2
	active   bool
	dragging bool
}

func (s *selection) start(v rl.Vector2) {
	s.from, s.to = v, v
	s.active = true
	s.dragging = true
}

func (s *selection) update(v rl.Vector2) {
	s.to = v
}

func (s *selection) screenRect() rl.Rectangle {
	x0, x1 := min(s.from.X, s.to.X), max(s.from.X, s.to.X)
	y0, y1 := min(s.from.Y, s.to.Y), max(s.from.Y, s.to.Y)
	return rl.NewRectangle(x0, y0, x1-x0, y1-y0)
}

// toSource maps the dragged rectangle into pane pixel coordinates.
func (s *selection) toSource(dest rl.Rectangle) image.Rectangle {
	if !s.active || dest.Width == 0 || dest.Height == 0 {
		return image.Rectangle{}
	}
	r := s.screenRect()
	sx := float32(s.pane.width) / dest.Width
	sy := float32(s.pane.height) / dest.Height
	out := image.Rect(
		int((r.X-dest.X)*sx),
		int((r.Y-dest.Y)*sy),
		int((r.X+r.Width-dest.X)*sx),
		int((r.Y+r.Height-dest.Y)*sy),
	)
	return out.Intersect(image.Rect(0, 0, s.pane.width, s.pane.height))
}

// slot is the screen area reserved for pane i.
func (w *Window) slot(i int) rl.Rectangle {
	n := max(1, len(w.panes))
	sw := float32(rl.GetScreenWidth()) / float32(n)
	sh := float32(rl.GetScreenHeight() - statusHeight - titleHeight)
	return rl.NewRectangle(float32(i)*sw+margin, titleHeight, sw-2*margin, sh-margin)
}

// destFor fits the pane texture into its slot keeping the aspect ratio.
func (w *Window) destFor(p *pane) rl.Rectangle {
	i := 0
	for j, q := range w.panes {
		if q == p {
			i = j
		}
	}
	s := w.slot(i)
	if p.width == 0 || p.height == 0 {
		return s
	}
	scale := min(s.Width/float32(p.width), s.Height/float32(p.height))
	dw, dh := float32(p.width)*scale, float32(p.height)*scale
	return rl.NewRectangle(s.X+(s.Width-dw)/2, s.Y+(s.Height-dh)/2, dw, dh)
}

func (w *Window) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	for i, p := range w.panes {
		s := w.slot(i)
		rl.DrawText(p.name, int32(s.X), 4, 18, ColTitle)
		if !p.loaded {
			rl.DrawText("(no frame)", int32(s.X), int32(s.Y+s.Height/2), 18, ColTextDim)
			continue
		}
		src := rl.NewRectangle(0, 0, float32(p.width), float32(p.height))
		rl.DrawTexturePro(p.tex, src, w.destFor(p), rl.NewVector2(0, 0), 0, rl.White)
	}

	if w.sel != nil && w.sel.active {
		rl.DrawRectangleLinesEx(w.sel.screenRect(), 2, ColSelect)
	}

	y := int32(rl.GetScreenHeight() - statusHeight + 6)
	rl.DrawText(w.statusLine(), margin, y, 18, ColText)
	rl.DrawText(w.helpLine(), margin, y+24, 16, ColTextDim)

	rl.EndDrawing()
}

func (w *Window) statusLine() string {
	st := w.status
	if st.Len == 0 {
		return "waiting for frames"
	}
	parts := []string{
		fmt.Sprintf("%d/%d %s", st.Cursor+1, st.Len, st.Path),
		"mode " + st.Mode.String(),
		"baseline " + st.Region.String(),
	}
	if st.Hold {
		parts = append(parts, "HELD")
	}
	names := make([]string, 0, len(st.Metrics))
	for k := range st.Metrics {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		parts = append(parts, fmt.Sprintf("%s %+.3f", k, st.Metrics[k]))
	}
	return strings.Join(parts, "   ")
}

func (w *Window) helpLine() string {
	if w.sel != nil {
		return "drag to select   enter/space:commit   esc/c:cancel"
	}
	return w.status.Help
}
