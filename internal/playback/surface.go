package playback

import (
	"context"
	"time"

	"github.com/san-kum/ndviplay/internal/frame"
)

// Surface is the display and input collaborator.
type Surface interface {
	// Show replaces the content of the named window.
	Show(window string, img *frame.Color)
	// WaitKey blocks for at most timeout and returns the pressed key, NoKey
	// on timeout or KeyClosed once the surface is gone.
	WaitKey(ctx context.Context, timeout time.Duration) Key
	// SelectRegion blocks until the operator commits a rectangle on the
	// named window. An aborted selection returns frame.Unset.
	SelectRegion(ctx context.Context, window string, img *frame.Color) frame.Region
}

// StatusSink is implemented by surfaces that display playback status.
type StatusSink interface {
	Status(Status)
}

// Decoder loads the frame behind a sequence entry.
type Decoder interface {
	Decode(path string) (*frame.Color, error)
}

type DecoderFunc func(path string) (*frame.Color, error)

func (f DecoderFunc) Decode(path string) (*frame.Color, error) { return f(path) }

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
