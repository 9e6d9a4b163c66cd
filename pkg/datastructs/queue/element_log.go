package queue

import "github.com/huynhanx03/go-versionqueue/pkg/datastructs/buffer"

// elementLog holds every element ever enqueued, in enqueue order.
// Indices are never reused and slots are never cleared on dequeue, so any
// window recorded in the version table stays readable.
type elementLog[T any] struct {
	arr *buffer.Array[T]
}

func newElementLog[T any](capacity int) *elementLog[T] {
	return &elementLog[T]{arr: buffer.NewArray[T](capacity)}
}

// append stores v and returns its logical index.
func (l *elementLog[T]) append(v T) int { return l.arr.Append(v) }

func (l *elementLog[T]) read(i int) T { return l.arr.At(i) }

func (l *elementLog[T]) window(w Window) []T { return l.arr.Range(w.Start, w.End) }

func (l *elementLog[T]) each(w Window, fn func(i int, v T) error) error {
	return l.arr.Iterate(w.Start, w.End, fn)
}

func (l *elementLog[T]) clone() *elementLog[T] {
	return &elementLog[T]{arr: l.arr.Clone()}
}
