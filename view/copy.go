// File: view/copy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk transfer out of a view. All paths are overlap-safe: the result
// equals reading every source element before the first destination write,
// even when destination and view share one backing run at shifted offsets.

package view

import (
	"github.com/momentics/memview/api"
	"github.com/momentics/memview/internal/memops"
)

// CopyTo copies all Len() elements into dst. dst may alias the view's
// memory at any offset. Fails without touching dst when dst is too short.
func (v View[T]) CopyTo(dst []T) error {
	if len(dst) < v.len {
		return api.NewError(api.ErrCodeDestinationTooShort,
			"destination too short").
			WithContext("destination", len(dst)).
			WithContext("source", v.len)
	}
	memops.Move(dst, v.run())
	return nil
}

// TryCopyTo is the non-failing variant of CopyTo: it reports whether the
// copy happened. On false, dst is completely unmodified.
func (v View[T]) TryCopyTo(dst []T) bool {
	if len(dst) < v.len {
		return false
	}
	memops.Move(dst, v.run())
	return true
}

// ToSlice materializes an independently owned copy of the observed
// elements. This is the only operation that crosses back into owned,
// allocated memory. Empty views return a canonical empty slice; zero-byte
// allocations are shared by the runtime, so repeated calls do not allocate.
func (v View[T]) ToSlice() []T {
	if v.len == 0 {
		return []T{}
	}
	out := make([]T, v.len)
	memops.Move(out, v.run())
	return out
}
