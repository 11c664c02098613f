// File: view/enumerator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package view

import (
	"iter"

	"github.com/momentics/memview/api"
	"github.com/momentics/memview/internal/bounds"
)

// Enumerator is a single-pass forward cursor over one view. It starts
// before the first element and is never resettable: once MoveNext has
// returned false it keeps returning false. The enumerator borrows the view
// for the duration of traversal and must not outlive it.
type Enumerator[T any] struct {
	view  View[T]
	index int
}

// Enumerate returns a cursor positioned before the first element.
func (v View[T]) Enumerate() Enumerator[T] {
	return Enumerator[T]{view: v, index: -1}
}

// MoveNext advances to the next element and reports whether one is
// available. Indices 0..Len()-1 are visited exactly once, in order.
func (e *Enumerator[T]) MoveNext() bool {
	if e.index+1 >= e.view.len {
		e.index = e.view.len
		return false
	}
	e.index++
	return true
}

// Current returns a reference to the element at the cursor. It is valid
// only between a MoveNext that returned true and the next advance; both the
// before-first and the exhausted state reject access.
func (e *Enumerator[T]) Current() *T {
	if !bounds.Index(e.index, e.view.len) {
		panic(api.NewError(api.ErrCodeIndexOutOfRange,
			"enumerator positioned outside the view").
			WithContext("index", e.index).
			WithContext("len", e.view.len))
	}
	return e.view.at(e.index)
}

// Values yields copies of the elements in index order, for range-over-func
// traversal.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(*v.at(i)) {
				return
			}
		}
	}
}

// All yields index/element pairs in index order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.at(i)) {
				return
			}
		}
	}
}
