package playback_test

import (
	"context"
	"errors"
	"time"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/playback"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Elapsed() time.Duration { return c.now.Sub(epoch) }

// event delivers key at the given offset from epoch.
type event struct {
	at  time.Duration
	key playback.Key
}

// scriptedSurface replays key events against a fake clock. WaitKey jumps
// the clock either to the next event or to the end of the timeout.
type scriptedSurface struct {
	clock    *fakeClock
	events   []event
	picks    []frame.Region
	shown    map[string]*frame.Color
	statuses []playback.Status
	pickedOn []string
	waits    []time.Duration
}

func newScriptedSurface(clock *fakeClock, events ...event) *scriptedSurface {
	return &scriptedSurface{clock: clock, events: events, shown: make(map[string]*frame.Color)}
}

func (s *scriptedSurface) Show(window string, img *frame.Color) {
	s.shown[window] = img
}

func (s *scriptedSurface) WaitKey(ctx context.Context, timeout time.Duration) playback.Key {
	s.waits = append(s.waits, timeout)
	deadline := s.clock.now.Add(timeout)
	if len(s.events) > 0 {
		next := epoch.Add(s.events[0].at)
		if !next.After(deadline) {
			if next.After(s.clock.now) {
				s.clock.now = next
			}
			key := s.events[0].key
			s.events = s.events[1:]
			return key
		}
	}
	s.clock.now = deadline
	return playback.NoKey
}

func (s *scriptedSurface) SelectRegion(ctx context.Context, window string, img *frame.Color) frame.Region {
	s.pickedOn = append(s.pickedOn, window)
	if len(s.picks) == 0 {
		return frame.Unset
	}
	r := s.picks[0]
	s.picks = s.picks[1:]
	return r
}

func (s *scriptedSurface) Status(st playback.Status) {
	s.statuses = append(s.statuses, st)
}

func (s *scriptedSurface) lastStatus() playback.Status {
	return s.statuses[len(s.statuses)-1]
}

// plainSurface has no status support.
type plainSurface struct {
	shows int
}

func (p *plainSurface) Show(string, *frame.Color) { p.shows++ }

func (p *plainSurface) WaitKey(context.Context, time.Duration) playback.Key { return playback.KeyClosed }

func (p *plainSurface) SelectRegion(context.Context, string, *frame.Color) frame.Region {
	return frame.Unset
}

// gradientDecoder returns a distinct frame per path.
func gradientDecoder(w, h int) playback.Decoder {
	return playback.DecoderFunc(func(path string) (*frame.Color, error) {
		seed := uint8(len(path) * 17)
		img := frame.NewColor(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.Set(x, y, uint8(x*30)+seed, 40, uint8(y*40+20))
			}
		}
		return img, nil
	})
}

var errBroken = errors.New("broken file")

func brokenDecoder() playback.Decoder {
	return playback.DecoderFunc(func(path string) (*frame.Color, error) {
		return nil, errBroken
	})
}
