//go:build gocv

package cvwin

import (
	"context"
	"time"

	"gocv.io/x/gocv"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/playback"
)

// Windows implements playback.Surface with one HighGUI window per view.
type Windows struct {
	order []string
	wins  map[string]*gocv.Window
}

func Open(names []string) (*Windows, error) {
	w := &Windows{wins: make(map[string]*gocv.Window)}
	for _, name := range names {
		w.order = append(w.order, name)
		w.wins[name] = gocv.NewWindow(name)
	}
	return w, nil
}

func (w *Windows) Close() error {
	var first error
	for _, name := range w.order {
		if err := w.wins[name].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// toMat wraps the frame bytes, which are already in BGR order.
func toMat(img *frame.Color) (gocv.Mat, error) {
	return gocv.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, img.Pix)
}

// Show keeps the previous content for empty frames since HighGUI cannot
// display an empty matrix.
func (w *Windows) Show(name string, img *frame.Color) {
	win, ok := w.wins[name]
	if !ok || img.Empty() {
		return
	}
	mat, err := toMat(img)
	if err != nil {
		return
	}
	defer mat.Close()
	win.IMShow(mat)
}

func (w *Windows) WaitKey(ctx context.Context, timeout time.Duration) playback.Key {
	if len(w.order) == 0 {
		return playback.KeyClosed
	}
	if ctx.Err() != nil {
		return playback.NoKey
	}
	win := w.wins[w.order[0]]
	k := win.WaitKey(waitMillis(timeout.Milliseconds()))
	if !win.IsOpen() {
		return playback.KeyClosed
	}
	if k < 0 {
		return playback.NoKey
	}
	return playback.Key(string(rune(k & 0xff)))
}

func (w *Windows) SelectRegion(ctx context.Context, name string, img *frame.Color) frame.Region {
	win, ok := w.wins[name]
	if !ok || img.Empty() {
		return frame.Unset
	}
	mat, err := toMat(img)
	if err != nil {
		return frame.Unset
	}
	defer mat.Close()
	return frame.RegionFromRect(win.SelectROI(mat))
}
