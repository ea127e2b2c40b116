// Package playback drives the timed frame-by-frame display loop.
//
// A [Controller] owns the frame sequence and the [State] (cursor, hold flag,
// baseline region and previous index field). Each cycle it decodes the frame
// at the cursor, runs the pipeline, shows the index and difference views and
// then waits a fixed interval while dispatching operator commands.
//
// Display, keyboard and region picking are provided by a [Surface]. The
// controller never touches a window directly, which keeps the state machine
// testable with scripted surfaces.
//
// # Commands
//
//	quit      - end playback (default keys q, Q)
//	baseline  - pick a baseline region on the index view (default key b)
//	hold      - toggle holding the current frame (no default key)
//
// # Timing
//
// Commands never extend a cycle: after every handled key the remaining wait
// is recomputed from the cycle start, so an idle cycle always lasts exactly
// the configured interval.
package playback
