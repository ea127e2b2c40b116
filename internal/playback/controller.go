package playback

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/metrics"
	"github.com/san-kum/ndviplay/internal/pipeline"
)

const (
	DefaultInterval    = 2 * time.Second
	DefaultIndexWindow = "index view"
	DefaultDiffWindow  = "difference view"

	// minWait keeps backends from interpreting a zero timeout as "forever".
	minWait = time.Millisecond
)

type Options struct {
	Interval       time.Duration
	Keymap         Keymap
	EmptySelection SelectionPolicy
	IndexWindow    string
	DiffWindow     string
	Clock          Clock
	Logger         *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Interval:       DefaultInterval,
		Keymap:         DefaultKeymap(),
		EmptySelection: ClearOnEmpty,
		IndexWindow:    DefaultIndexWindow,
		DiffWindow:     DefaultDiffWindow,
		Clock:          systemClock{},
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// Controller runs the playback state machine. It is not safe for concurrent
// use; the control loop owns it exclusively.
type Controller struct {
	seq     Sequence
	dec     Decoder
	surface Surface
	opts    Options
	metrics []metrics.Metric
	state   State
	shown   *frame.Color
}

// New validates the sequence and builds a controller positioned on the first
// frame. An empty sequence yields frame.ErrNoFrames.
func New(seq Sequence, dec Decoder, surface Surface, opts Options) (*Controller, error) {
	if len(seq) == 0 {
		return nil, frame.ErrNoFrames
	}
	def := DefaultOptions()
	if opts.Interval <= 0 {
		opts.Interval = def.Interval
	}
	if opts.Keymap == nil {
		opts.Keymap = def.Keymap
	}
	if opts.IndexWindow == "" {
		opts.IndexWindow = def.IndexWindow
	}
	if opts.DiffWindow == "" {
		opts.DiffWindow = def.DiffWindow
	}
	if opts.Clock == nil {
		opts.Clock = def.Clock
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	return &Controller{seq: seq, dec: dec, surface: surface, opts: opts}, nil
}

func (c *Controller) AddMetric(m metrics.Metric) {
	c.metrics = append(c.metrics, m)
}

// State returns a copy of the current playback state.
func (c *Controller) State() State {
	return c.state
}

// Run cycles until a quit command, a closed surface or ctx cancellation.
func (c *Controller) Run(ctx context.Context) error {
	for !c.state.Done {
		c.Step(ctx)
	}
	c.opts.Logger.Info("playback finished", "cursor", c.state.Cursor)
	return nil
}

// Step performs one full cycle: render, wait, advance.
func (c *Controller) Step(ctx context.Context) {
	c.Render()
	c.Wait(ctx)
	if !c.state.Done {
		c.Advance()
	}
}

// Render decodes the frame at the cursor and shows both views.
func (c *Controller) Render() pipeline.Result {
	path := c.seq[c.state.Cursor]
	img, err := c.dec.Decode(path)
	if err != nil {
		c.opts.Logger.Warn("decode failed", "path", path, "err", err)
	}
	if img == nil {
		img = frame.NewColor(0, 0)
	}

	res := pipeline.Process(img, c.state.Last, c.state.Region)
	c.state.Last = res.Index
	c.shown = res.IndexView

	for _, m := range c.metrics {
		m.Observe(res.Index, c.state.Region)
	}

	c.surface.Show(c.opts.IndexWindow, res.IndexView)
	c.surface.Show(c.opts.DiffWindow, res.DiffView)
	c.opts.Logger.Debug("frame shown", "path", path, "cursor", c.state.Cursor, "mode", res.Mode)

	if sink, ok := c.surface.(StatusSink); ok {
		sink.Status(Status{
			Path:    path,
			Cursor:  c.state.Cursor,
			Len:     len(c.seq),
			Hold:    c.state.Hold,
			Region:  c.state.Region,
			Mode:    res.Mode,
			Metrics: metrics.Snapshot(c.metrics),
			Help:    c.opts.Keymap.Help(),
		})
	}
	return res
}

// Wait blocks for the configured interval, dispatching commands as they
// arrive. The remaining budget is recomputed from the cycle start after
// every key, so commands never extend the wait.
func (c *Controller) Wait(ctx context.Context) {
	start := c.opts.Clock.Now()
	remaining := c.opts.Interval
	for remaining > 0 && !c.state.Done {
		if ctx.Err() != nil {
			c.opts.Logger.Info("playback canceled", "err", ctx.Err())
			c.state.Done = true
			return
		}
		key := c.surface.WaitKey(ctx, max(remaining, minWait))
		if key != NoKey {
			c.Handle(ctx, key)
		}
		remaining = c.opts.Interval - c.opts.Clock.Now().Sub(start)
	}
}

// Handle dispatches a single key.
func (c *Controller) Handle(ctx context.Context, key Key) {
	cmd := c.opts.Keymap.Lookup(key)
	switch cmd {
	case CmdQuit:
		c.state.Done = true
	case CmdBaseline:
		c.selectBaseline(ctx)
	case CmdHold:
		c.state.Hold = !c.state.Hold
	default:
		return
	}
	c.opts.Logger.Info("command", "cmd", cmd, "hold", c.state.Hold, "region", c.state.Region)
}

func (c *Controller) selectBaseline(ctx context.Context) {
	img := c.shown
	if img == nil {
		img = frame.NewColor(0, 0)
	}
	r := frame.RegionFromRect(c.surface.SelectRegion(ctx, c.opts.IndexWindow, img).Rect)
	if !r.IsSet() && c.opts.EmptySelection == KeepOnEmpty {
		return
	}
	c.state.Region = r
}

// Advance moves the cursor unless playback is held.
func (c *Controller) Advance() {
	if c.state.Hold {
		return
	}
	c.state.Cursor = c.seq.Next(c.state.Cursor)
}
