// Package cvwin shows playback in OpenCV HighGUI windows. It is only
// functional when built with the gocv tag; otherwise Open reports
// ErrBackendUnavailable.
package cvwin

import "errors"

var ErrBackendUnavailable = errors.New("cvwin: built without gocv support (rebuild with -tags gocv)")

// waitMillis converts a wait budget into a HighGUI delay. HighGUI treats 0
// as "wait forever", so the result is at least 1.
func waitMillis(ms int64) int {
	if ms < 1 {
		return 1
	}
	return int(ms)
}
