// File: view/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package view provides a bounds-safe, non-owning window over a contiguous
// run of typed elements. A View is a pure value (origin pointer + length):
// it never allocates, never owns or frees the memory it observes, and never
// synchronizes. Slicing and indexing cost one unsigned comparison; the only
// copying operations are CopyTo/TryCopyTo and the explicit ToSlice.
//
// Views obey a stack-only discipline. A view must not outlive the validity
// window of its backing memory: do not store views in long-lived structures,
// do not box them into interface slots, and for raw-memory origins do not
// let a view survive the arena or buffer it observes. Go cannot check these
// lifetimes statically, so the constructors document the obligation and the
// caller carries it.
package view

import (
	"unsafe"

	"github.com/momentics/memview/api"
	"github.com/momentics/memview/internal/bounds"
	"github.com/momentics/memview/internal/memops"
	"github.com/momentics/memview/seq"
)

// View is an immutable window over len elements starting at ptr. The zero
// value is the canonical empty view. View values are comparable: == holds
// iff two views share the exact origin address and length. Content equality
// and hashing are deliberately not provided (api.ErrNotSupported names the
// policy); comparing contents would force allocation incompatible with the
// type's non-escaping nature.
type View[T any] struct {
	ptr *T
	len int
}

// New creates a view spanning all of v. A nil vector is an error here; the
// conversion paths Of and OfSegment canonicalize nil to the empty view
// instead.
func New[T any](v *seq.Vector[T]) (View[T], error) {
	if v == nil {
		return View[T]{}, api.NewError(api.ErrCodeNilSequence,
			"view requires a backing vector")
	}
	return FromSlice(v.Backing()), nil
}

// NewAt creates a view over v covering [start, start+length).
func NewAt[T any](v *seq.Vector[T], start, length int) (View[T], error) {
	if v == nil {
		return View[T]{}, api.NewError(api.ErrCodeNilSequence,
			"view requires a backing vector")
	}
	if !bounds.Range(start, length, v.Len()) {
		return View[T]{}, api.NewError(api.ErrCodeOutOfRange,
			"view window out of range").
			WithContext("start", start).
			WithContext("length", length).
			WithContext("len", v.Len())
	}
	return FromSlice(v.Backing()[start : start+length]), nil
}

// Of converts a vector into a view over all its elements. nil converts to
// the empty view.
func Of[T any](v *seq.Vector[T]) View[T] {
	if v == nil {
		return View[T]{}
	}
	return FromSlice(v.Backing())
}

// OfSegment converts an offset/count segment into a view over its window.
// The zero segment converts to the empty view. Segment construction already
// validated the window against the backing vector.
func OfSegment[T any](s seq.Segment[T]) View[T] {
	vec := s.Vector()
	if vec == nil {
		return View[T]{}
	}
	return FromSlice(vec.Backing()[s.Offset() : s.Offset()+s.Len()])
}

// FromSlice creates a view borrowing the elements of s. The view observes
// s's backing array directly; it sees writes through s and must not outlive
// the array.
func FromSlice[T any](s []T) View[T] {
	return View[T]{ptr: unsafe.SliceData(s), len: len(s)}
}

// FromRaw creates a view over length elements of unmanaged memory starting
// at p. The element type must not embed references into GC-managed memory:
// the collector cannot scan a raw buffer, so pointerful element types are
// rejected at construction. Keeping p valid and fixed for the lifetime of
// the view is entirely the caller's obligation.
func FromRaw[T any](p unsafe.Pointer, length int) (View[T], error) {
	if length < 0 {
		return View[T]{}, api.NewError(api.ErrCodeOutOfRange,
			"negative view length").
			WithContext("length", length)
	}
	if memops.HasPointers[T]() {
		return View[T]{}, api.NewError(api.ErrCodeInvalidOperation,
			"element type not representable over raw memory")
	}
	if p == nil && length > 0 {
		return View[T]{}, api.NewError(api.ErrCodeNilSequence,
			"nil raw buffer with non-zero length")
	}
	return View[T]{ptr: (*T)(p), len: length}, nil
}

// Len reports the element count.
func (v View[T]) Len() int {
	return v.len
}

// IsEmpty reports whether the view has no elements.
func (v View[T]) IsEmpty() bool {
	return v.len == 0
}

// At returns a reference aliasing element i. The reference must not be
// retained past the view's validity window.
func (v View[T]) At(i int) *T {
	if !bounds.Index(i, v.len) {
		panic(api.NewError(api.ErrCodeIndexOutOfRange, "view index out of range").
			WithContext("index", i).
			WithContext("len", v.len))
	}
	return v.at(i)
}

// Get returns a copy of element i, with the same bounds contract as At.
func (v View[T]) Get(i int) T {
	return *v.At(i)
}

// Slice returns the zero-copy tail [start, Len()). The receiver is
// untouched; start == Len() yields the empty view.
func (v View[T]) Slice(start int) View[T] {
	if !bounds.Start(start, v.len) {
		panic(api.NewError(api.ErrCodeOutOfRange, "slice start out of range").
			WithContext("start", start).
			WithContext("len", v.len))
	}
	return View[T]{ptr: v.at(start), len: v.len - start}
}

// SliceRange returns the zero-copy window [start, start+length).
func (v View[T]) SliceRange(start, length int) View[T] {
	if !bounds.Range(start, length, v.len) {
		panic(api.NewError(api.ErrCodeOutOfRange, "slice window out of range").
			WithContext("start", start).
			WithContext("length", length).
			WithContext("len", v.len))
	}
	return View[T]{ptr: v.at(start), len: length}
}

// at computes the address of element i without a bounds check. i == len is
// permitted for the one-past-end origin of an empty tail slice.
func (v View[T]) at(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(v.ptr), uintptr(i)*unsafe.Sizeof(*v.ptr)))
}

// run materializes the observed elements as a slice header for bulk
// operations. No memory moves.
func (v View[T]) run() []T {
	return unsafe.Slice(v.ptr, v.len)
}
