// File: internal/bounds/bounds.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range validation shared by every operation that touches an index or a
// sub-range. Each check is a single unsigned comparison: reinterpreting the
// signed candidate as unsigned turns a negative value into a huge one, so
// the same >= test rejects both underflow and overflow.

package bounds

// Index reports whether i is a valid element index for a run of n elements.
func Index(i, n int) bool {
	return uint(i) < uint(n)
}

// Start reports whether start is a valid split point for a run of n
// elements. Unlike Index, start == n is allowed (it names the empty tail).
func Start(start, n int) bool {
	return uint(start) <= uint(n)
}

// Range reports whether [start, start+length) lies within a run of n
// elements. The unsigned arithmetic makes negative start, negative length
// and start+length overflow all fail the same comparison.
func Range(start, length, n int) bool {
	return uint(start) <= uint(n) && uint(length) <= uint(n-start)
}
