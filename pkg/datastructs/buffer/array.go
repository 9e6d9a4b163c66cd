package buffer

// Array is a generic growable append-only array.
// Slots are never overwritten once appended, so any index returned by Append
// stays readable for the lifetime of the Array.
// It is NOT thread-safe.
type Array[T any] struct {
	data    []T // backing storage, len(data) is the capacity
	length  int // number of appended elements
	growths int // number of reallocations performed
}

// NewArray creates an empty Array with the given initial capacity.
// A non-positive capacity defers allocation to the first Append.
func NewArray[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{data: make([]T, capacity)}
}

// Len returns the number of appended elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the current capacity.
func (a *Array[T]) Cap() int { return len(a.data) }

// Growths returns how many times the backing storage was reallocated.
func (a *Array[T]) Growths() int { return a.growths }

// Grow ensures there is space for another n elements.
// Capacity doubles (starting from 1) until it fits. The new storage is fully
// populated before it replaces the old one.
func (a *Array[T]) Grow(n int) {
	need := a.length + n
	if need <= len(a.data) {
		return
	}

	newCap := len(a.data)
	for newCap < need {
		newCap = nextCapacity(newCap)
	}

	newData := make([]T, newCap)
	copy(newData, a.data[:a.length])
	a.data = newData
	a.growths++
}

// Append writes v into the next slot and returns its index.
func (a *Array[T]) Append(v T) int {
	a.Grow(1)
	idx := a.length
	a.data[idx] = v
	a.length++
	return idx
}

// At returns the element stored at index i.
// It panics if i is outside [0, Len()).
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= a.length {
		panic("buffer: index out of range")
	}
	return a.data[i]
}

// Last returns the most recently appended element.
func (a *Array[T]) Last() T {
	return a.At(a.length - 1)
}

// Range returns a copy of the elements in [from, to).
func (a *Array[T]) Range(from, to int) []T {
	a.checkRange(from, to)
	out := make([]T, to-from)
	copy(out, a.data[from:to])
	return out
}

// Iterate calls fn for every element in [from, to) in index order.
// It stops iteration if fn returns an error.
func (a *Array[T]) Iterate(from, to int, fn func(i int, v T) error) error {
	a.checkRange(from, to)
	for i := from; i < to; i++ {
		if err := fn(i, a.data[i]); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy that shares no storage with a.
// The clone keeps the capacity but starts with a zero growth counter.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data[:a.length])
	return &Array[T]{data: data, length: a.length}
}

func (a *Array[T]) checkRange(from, to int) {
	if from < 0 || to > a.length || from > to {
		panic("buffer: range out of bounds")
	}
}

// nextCapacity implements the doubling policy.
func nextCapacity(c int) int {
	if c < 1 {
		return 1
	}
	return c * growthFactor
}
