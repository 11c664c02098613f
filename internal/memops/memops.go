// File: internal/memops/memops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk element transfer and element-type classification for the view core.
//
// Move must behave as if every source element were read into a scratch
// buffer before the first destination write, whatever the aliasing between
// the two runs. The built-in copy carries exactly that memmove contract and
// performs typed per-element copies, so pointer-bearing element types keep
// correct ownership semantics and are never moved byte-wise.

package memops

import "reflect"

// Move transfers min(len(dst), len(src)) elements from src to dst and
// returns the count. Safe under any overlap, including src and dst sharing
// one backing run at shifted offsets.
func Move[T any](dst, src []T) int {
	return copy(dst, src)
}

// HasPointers reports whether T embeds references into GC-managed memory
// anywhere in its shape. Such types cannot back a view over raw memory:
// the collector cannot scan an unmanaged buffer for the embedded pointers.
func HasPointers[T any]() bool {
	var zero T
	return typeHasPointers(reflect.TypeOf(&zero).Elem())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, Map, Chan, Func, Slice, String,
		// Interface: all reference GC-managed memory.
		return true
	}
}
