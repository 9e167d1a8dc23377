package world

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateGround indicates a ground segment of zero length, whose
	// normal is undefined.
	ErrDegenerateGround = errors.New("world: degenerate ground (zero-length segment)")

	// ErrInvalidBounds indicates a viewport with a non-positive dimension.
	ErrInvalidBounds = errors.New("world: viewport dimensions must be positive")
)

// FrameError wraps an error with the frame it happened on.
type FrameError struct {
	Frame   uint64
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
