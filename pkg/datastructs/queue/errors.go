package queue

import "github.com/pkg/errors"

var (
	// ErrUnderflow is returned when removing or peeking from an empty queue.
	ErrUnderflow = errors.New("queue: underflow, no elements in queue")

	// ErrInvalidVersion is returned when a version number has not been recorded.
	ErrInvalidVersion = errors.New("queue: invalid version")
)
