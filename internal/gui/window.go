// Package gui is the windowed playback surface built on raylib. Both views
// share one window, side by side, with a status line underneath. A baseline
// is picked by dragging a rectangle on the index view and confirming with
// enter or space; escape or c cancels.
package gui

import (
	"context"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/playback"
)

func init() {
	// raylib calls must stay on the main thread.
	runtime.LockOSThread()
}

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTitle   = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 220, 0, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	statusHeight = 56
	titleHeight  = 24
	margin       = 8
)

type Options struct {
	Width   int32
	Height  int32
	Title   string
	Windows []string
}

type pane struct {
	name   string
	tex    rl.Texture2D
	loaded bool
	width  int
	height int
}

// Window implements playback.Surface and playback.StatusSink.
type Window struct {
	panes  []*pane
	byName map[string]*pane
	status playback.Status
	closed bool
	sel    *selection
}

// Open creates the raylib window. Close must be called on the same thread.
func Open(opts Options) *Window {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.Title == "" {
		opts.Title = "ndviplay"
	}
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	w := &Window{byName: make(map[string]*pane)}
	for _, name := range opts.Windows {
		p := &pane{name: name}
		w.panes = append(w.panes, p)
		w.byName[name] = p
	}
	return w
}

func (w *Window) Close() {
	for _, p := range w.panes {
		if p.loaded {
			rl.UnloadTexture(p.tex)
		}
	}
	rl.CloseWindow()
}

func (w *Window) Show(name string, img *frame.Color) {
	p, ok := w.byName[name]
	if !ok {
		p = &pane{name: name}
		w.panes = append(w.panes, p)
		w.byName[name] = p
	}
	if p.loaded {
		rl.UnloadTexture(p.tex)
		p.loaded = false
	}
	if !img.Empty() {
		im := rl.NewImageFromImage(img.ToImage())
		p.tex = rl.LoadTextureFromImage(im)
		rl.UnloadImage(im)
		p.width, p.height = img.Width, img.Height
		p.loaded = true
	}
	w.draw()
}

func (w *Window) Status(st playback.Status) {
	w.status = st
}

// WaitKey keeps rendering until a character is typed, the timeout passes or
// the window is closed.
func (w *Window) WaitKey(ctx context.Context, timeout time.Duration) playback.Key {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if w.closed || rl.WindowShouldClose() {
			w.closed = true
			return playback.KeyClosed
		}
		if ctx.Err() != nil {
			return playback.NoKey
		}
		w.draw()
		if c := rl.GetCharPressed(); c != 0 {
			return playback.Key(string(rune(c)))
		}
	}
	return playback.NoKey
}

// SelectRegion lets the operator drag a rectangle over the named pane.
func (w *Window) SelectRegion(ctx context.Context, name string, img *frame.Color) frame.Region {
	p, ok := w.byName[name]
	if !ok || !p.loaded {
		return frame.Unset
	}
	w.sel = &selection{pane: p}
	defer func() { w.sel = nil }()

	for {
		if w.closed || rl.WindowShouldClose() {
			w.closed = true
			return frame.Unset
		}
		if ctx.Err() != nil {
			return frame.Unset
		}
		dest := w.destFor(p)
		mouse := rl.GetMousePosition()
		switch {
		case rl.IsMouseButtonPressed(rl.MouseButtonLeft) && rl.CheckCollisionPointRec(mouse, dest):
			w.sel.start(mouse)
		case rl.IsMouseButtonDown(rl.MouseButtonLeft) && w.sel.dragging:
			w.sel.update(mouse)
		case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
			w.sel.dragging = false
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			return frame.RegionFromRect(w.sel.toSource(dest))
		}
		if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyC) {
			return frame.Unset
		}
		w.draw()
	}
}
