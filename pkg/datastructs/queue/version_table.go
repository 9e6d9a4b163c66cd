package queue

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-versionqueue/pkg/datastructs/buffer"
)

// Window is the half-open range [Start, End) of the element log that holds
// the live contents of the queue at one version.
type Window struct {
	Start int
	End   int
}

// Len returns the number of elements in the window.
func (w Window) Len() int { return w.End - w.Start }

// IsEmpty reports whether the window holds no elements.
func (w Window) IsEmpty() bool { return w.Start == w.End }

// versionTable maps each version number to its Window.
// It grows by one entry per mutation, independently of the element log.
type versionTable struct {
	arr *buffer.Array[Window]
}

// newVersionTable creates a table holding version 0 as the empty window.
func newVersionTable(capacity int) *versionTable {
	t := &versionTable{arr: buffer.NewArray[Window](capacity)}
	t.arr.Append(Window{})
	return t
}

// record appends w and returns its version number.
func (t *versionTable) record(w Window) int { return t.arr.Append(w) }

// latest returns the highest recorded version number.
func (t *versionTable) latest() int { return t.arr.Len() - 1 }

func (t *versionTable) lookup(v int) (Window, error) {
	if v < 0 || v > t.latest() {
		return Window{}, errors.Wrapf(ErrInvalidVersion, "version %d not in [0, %d]", v, t.latest())
	}
	return t.arr.At(v), nil
}

func (t *versionTable) clone() *versionTable {
	return &versionTable{arr: t.arr.Clone()}
}
