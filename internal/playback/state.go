package playback

import (
	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/normalize"
)

// Sequence is the cyclic, startup-fixed list of frame sources.
type Sequence []string

// Next returns the cursor after i, wrapping to the first position.
func (s Sequence) Next(i int) int {
	if len(s) == 0 {
		return 0
	}
	return (i + 1) % len(s)
}

// State is the mutable playback state owned by the control loop.
type State struct {
	Cursor int
	Hold   bool
	Region frame.Region
	Last   *frame.Field
	Done   bool
}

// Status is reported to surfaces that implement StatusSink after every
// rendered frame.
type Status struct {
	Path    string
	Cursor  int
	Len     int
	Hold    bool
	Region  frame.Region
	Mode    normalize.Mode
	Metrics map[string]float64
	Help    string
}
