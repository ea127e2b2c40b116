package viz

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/playback"
)

type Options struct {
	Windows []string
	Cols    int
	Rows    int
}

// Terminal implements playback.Surface and playback.StatusSink on top of a
// Bubble Tea program running in its own goroutine.
type Terminal struct {
	prog  *tea.Program
	keys  chan playback.Key
	picks chan frame.Region
	done  chan struct{}
	cols  int
	rows  int
	err   error
}

func New(opts Options, progOpts ...tea.ProgramOption) *Terminal {
	keys := make(chan playback.Key, 16)
	picks := make(chan frame.Region, 1)
	if len(progOpts) == 0 {
		progOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Terminal{
		prog:  tea.NewProgram(newModel(opts.Windows, keys, picks), progOpts...),
		keys:  keys,
		picks: picks,
		done:  make(chan struct{}),
		cols:  opts.Cols,
		rows:  opts.Rows,
	}
}

// Start runs the program. It must be called exactly once.
func (t *Terminal) Start() {
	go func() {
		_, t.err = t.prog.Run()
		close(t.done)
	}()
}

// Close stops the program and returns its exit error.
func (t *Terminal) Close() error {
	t.prog.Quit()
	<-t.done
	return t.err
}

func (t *Terminal) Show(window string, img *frame.Color) {
	t.prog.Send(frameMsg{window: window, preview: NewPreview(img, t.cols, t.rows)})
}

func (t *Terminal) Status(st playback.Status) {
	t.prog.Send(statusMsg(st))
}

func (t *Terminal) WaitKey(ctx context.Context, timeout time.Duration) playback.Key {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-t.keys:
		return k
	case <-t.done:
		return playback.KeyClosed
	case <-ctx.Done():
		return playback.NoKey
	case <-timer.C:
		return playback.NoKey
	}
}

func (t *Terminal) SelectRegion(ctx context.Context, window string, img *frame.Color) frame.Region {
	t.prog.Send(pickMsg{window: window})
	select {
	case r := <-t.picks:
		return r
	case <-t.done:
		return frame.Unset
	case <-ctx.Done():
		return frame.Unset
	}
}
