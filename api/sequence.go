// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read contracts consumed by the view boundary. A view borrows a sequence
// without copying; the sequence must not be resized or freed while borrowed
// views over it are in use.

package api

// Sequence describes random-access read addressing over typed elements.
type Sequence[T any] interface {
	// Len reports the element count in O(1).
	Len() int

	// At returns a reference aliasing element i. Implementations must
	// reject out-of-range i; the reference stays valid until the
	// sequence is resized or released.
	At(i int) *T
}
