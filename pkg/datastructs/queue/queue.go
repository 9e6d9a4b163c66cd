package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the back of the queue.
	Enqueue(item T)

	// Dequeue removes and returns the item at the front of the queue.
	// Returns ErrUnderflow if the queue is empty.
	Dequeue() (T, error)

	// Front returns the oldest item without removing it.
	Front() (T, error)

	// Back returns the newest item without removing it.
	Back() (T, error)

	// Size returns the number of items in the queue.
	Size() int

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool
}

// History is implemented by queues that can reconstruct past states.
type History[T any] interface {
	// Version returns the latest recorded version number.
	Version() int

	// At returns the queue contents as of version v, oldest first.
	At(v int) ([]T, error)
}
