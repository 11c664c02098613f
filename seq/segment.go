// File: seq/segment.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package seq

import (
	"github.com/momentics/memview/api"
	"github.com/momentics/memview/internal/bounds"
)

// Segment is an offset/count window into a Vector. The zero value is the
// canonical empty segment. Validity is established at construction; a
// Segment never outgrows the vector length it was validated against.
type Segment[T any] struct {
	vec    *Vector[T]
	offset int
	count  int
}

// NewSegment creates a segment over v covering [offset, offset+count).
func NewSegment[T any](v *Vector[T], offset, count int) (Segment[T], error) {
	if v == nil {
		return Segment[T]{}, api.NewError(api.ErrCodeNilSequence,
			"segment requires a backing vector")
	}
	if !bounds.Range(offset, count, v.Len()) {
		return Segment[T]{}, api.NewError(api.ErrCodeOutOfRange,
			"segment window out of range").
			WithContext("offset", offset).
			WithContext("count", count).
			WithContext("len", v.Len())
	}
	return Segment[T]{vec: v, offset: offset, count: count}, nil
}

// Len reports the element count of the window.
func (s Segment[T]) Len() int {
	return s.count
}

// At returns a reference aliasing window element i.
func (s Segment[T]) At(i int) *T {
	if !bounds.Index(i, s.count) {
		panic(api.NewError(api.ErrCodeIndexOutOfRange, "segment index out of range").
			WithContext("index", i).
			WithContext("len", s.count))
	}
	return s.vec.At(s.offset + i)
}

// Vector returns the backing vector, nil for the empty segment.
func (s Segment[T]) Vector() *Vector[T] {
	return s.vec
}

// Offset returns the window start within the backing vector.
func (s Segment[T]) Offset() int {
	return s.offset
}

var _ api.Sequence[int] = Segment[int]{}
