// File: seq/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable typed sequence backing heap-originated views. A Vector owns its
// elements; views borrow the backing run without copying, so the caller must
// not Append or Reset while borrowed views are in use.

package seq

import (
	"github.com/momentics/memview/api"
	"github.com/momentics/memview/internal/bounds"
)

// Vector is a growable contiguous sequence with O(1) random access.
type Vector[T any] struct {
	items []T
}

// NewVector creates an empty vector with room for capacity elements.
func NewVector[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{items: make([]T, 0, capacity)}
}

// VectorOf creates a vector holding copies of the given elements.
func VectorOf[T any](items ...T) *Vector[T] {
	v := &Vector[T]{items: make([]T, len(items))}
	copy(v.items, items)
	return v
}

// Len reports the current element count.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// At returns a reference aliasing element i.
func (v *Vector[T]) At(i int) *T {
	if !bounds.Index(i, len(v.items)) {
		panic(api.NewError(api.ErrCodeIndexOutOfRange, "vector index out of range").
			WithContext("index", i).
			WithContext("len", len(v.items)))
	}
	return &v.items[i]
}

// Get returns a copy of element i, with the same bounds contract as At.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Append adds elements to the end, growing the backing run as needed.
// Growth reallocates: borrowed views over the old run keep observing the
// old memory.
func (v *Vector[T]) Append(items ...T) {
	v.items = append(v.items, items...)
}

// Reset clears the vector but retains capacity.
func (v *Vector[T]) Reset() {
	v.items = v.items[:0]
}

// Backing returns the live backing run. Callers borrow it; resizing the
// vector while the run is borrowed is a data race outside any contract.
func (v *Vector[T]) Backing() []T {
	return v.items
}

var _ api.Sequence[int] = (*Vector[int])(nil)
