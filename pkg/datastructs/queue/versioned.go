package queue

import (
	"go.uber.org/zap"
)

var (
	_ Queue[int]   = (*Versioned[int])(nil)
	_ History[int] = (*Versioned[int])(nil)
)

// Versioned is a FIFO queue that records a retrievable snapshot after every
// Enqueue and Dequeue. Snapshots are addressed by version number, starting
// at 0 for the empty queue.
//
// Elements are kept in an append-only element log; each version stores only
// the window of that log holding the live elements, so history costs two
// integers per operation instead of a copy of the queue.
//
// Versioned is NOT thread-safe. A caller that shares one across goroutines
// must guard the whole value with a single lock.
type Versioned[T any] struct {
	elements *elementLog[T]
	versions *versionTable
	live     Window
	logger   *zap.Logger
}

// NewVersioned creates an empty queue at version 0.
func NewVersioned[T any](opts ...Option) *Versioned[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Versioned[T]{
		elements: newElementLog[T](o.elementCapacity),
		versions: newVersionTable(o.versionCapacity),
		logger:   o.logger,
	}
}

// Enqueue appends item to the back of the queue and records a new version.
func (q *Versioned[T]) Enqueue(item T) {
	growths := q.elements.arr.Growths()
	q.elements.append(item)
	q.logGrowth("element log", growths, q.elements.arr.Growths(), q.elements.arr.Cap())

	q.commit(Window{Start: q.live.Start, End: q.live.End + 1})
}

// Dequeue removes and returns the oldest item and records a new version.
// On an empty queue it returns ErrUnderflow and records nothing.
func (q *Versioned[T]) Dequeue() (T, error) {
	var zero T
	if q.live.IsEmpty() {
		return zero, ErrUnderflow
	}

	item := q.elements.read(q.live.Start)
	q.commit(Window{Start: q.live.Start + 1, End: q.live.End})
	return item, nil
}

// commit records w as the next version and then makes it the live window.
func (q *Versioned[T]) commit(w Window) {
	growths := q.versions.arr.Growths()
	q.versions.record(w)
	q.logGrowth("version table", growths, q.versions.arr.Growths(), q.versions.arr.Cap())

	q.live = w
}

// Front returns the oldest live item.
func (q *Versioned[T]) Front() (T, error) {
	var zero T
	if q.live.IsEmpty() {
		return zero, ErrUnderflow
	}
	return q.elements.read(q.live.Start), nil
}

// Back returns the newest live item.
func (q *Versioned[T]) Back() (T, error) {
	var zero T
	if q.live.IsEmpty() {
		return zero, ErrUnderflow
	}
	return q.elements.read(q.live.End - 1), nil
}

// Size returns the number of live items.
func (q *Versioned[T]) Size() int { return q.live.Len() }

// IsEmpty reports whether the queue holds no live items.
func (q *Versioned[T]) IsEmpty() bool { return q.live.IsEmpty() }

// Version returns the latest recorded version number.
func (q *Versioned[T]) Version() int { return q.versions.latest() }

// Window returns the element log window recorded for version v.
func (q *Versioned[T]) Window(v int) (Window, error) {
	return q.versions.lookup(v)
}

// At returns a copy of the queue contents as of version v, oldest first.
// Version 0 is always the empty queue.
func (q *Versioned[T]) At(v int) ([]T, error) {
	w, err := q.versions.lookup(v)
	if err != nil {
		return nil, err
	}
	return q.elements.window(w), nil
}

// Each calls fn for every item of version v, oldest first, without copying.
// The index passed to fn is the position within that version (0 = front).
// It stops iteration if fn returns an error.
func (q *Versioned[T]) Each(v int, fn func(i int, item T) error) error {
	w, err := q.versions.lookup(v)
	if err != nil {
		return err
	}
	return q.elements.each(w, func(i int, item T) error {
		return fn(i-w.Start, item)
	})
}

// Clone returns a deep copy of q. The copy owns its own element log and
// version table; mutating either queue never affects the other's history.
func (q *Versioned[T]) Clone() *Versioned[T] {
	return &Versioned[T]{
		elements: q.elements.clone(),
		versions: q.versions.clone(),
		live:     q.live,
		logger:   q.logger,
	}
}

// Stats returns a snapshot of the queue's storage counters.
func (q *Versioned[T]) Stats() Stats {
	return Stats{
		Size:            q.live.Len(),
		Version:         q.versions.latest(),
		Elements:        q.elements.arr.Len(),
		ElementCapacity: q.elements.arr.Cap(),
		ElementGrowths:  q.elements.arr.Growths(),
		Versions:        q.versions.arr.Len(),
		VersionCapacity: q.versions.arr.Cap(),
		VersionGrowths:  q.versions.arr.Growths(),
	}
}

func (q *Versioned[T]) logGrowth(store string, before, after, capacity int) {
	if after == before {
		return
	}
	q.logger.Debug("queue storage grown",
		zap.String("store", store),
		zap.Int("capacity", capacity),
		zap.Int("version", q.versions.latest()),
	)
}
