//go:build !gocv

package cvwin

import (
	"context"
	"time"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/playback"
)

type Windows struct{}

func Open(names []string) (*Windows, error) {
	return nil, ErrBackendUnavailable
}

func (w *Windows) Close() error { return nil }

func (w *Windows) Show(string, *frame.Color) {}

func (w *Windows) WaitKey(context.Context, time.Duration) playback.Key { return playback.KeyClosed }

func (w *Windows) SelectRegion(context.Context, string, *frame.Color) frame.Region {
	return frame.Unset
}
