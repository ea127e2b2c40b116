package frame

import "errors"

// Domain errors for frame sources and geometry.
var (
	// ErrNoFrames indicates the frame sequence is empty at startup.
	ErrNoFrames = errors.New("frame: cannot find image files")

	// ErrUnreadable indicates a source that could not be decoded into pixels.
	ErrUnreadable = errors.New("frame: unreadable image")
)

// DecodeError wraps a decode failure with the source path.
type DecodeError struct {
	Path    string
	Wrapped error
}

func (e *DecodeError) Error() string {
	return e.Path + ": " + e.Wrapped.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Wrapped
}
