// File: arena/arena_stub.go
//go:build !linux

// Package arena: portable fallback backed by the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

func osAlloc(sz int) ([]byte, bool) {
	return make([]byte, sz), false
}

func osFree(_ []byte, _ bool) {}
