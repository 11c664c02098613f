// File: internal/memops/memops_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package memops_test

import (
	"testing"
	"unsafe"

	"github.com/momentics/memview/internal/memops"
)

func TestMoveOverlapForward(t *testing.T) {
	// Source and destination share backing memory shifted by one; a naive
	// forward copy would smear element 0 across the run.
	buf := []int{1, 2, 3, 4, 5, 0}
	n := memops.Move(buf[1:6], buf[0:5])
	if n != 5 {
		t.Fatalf("moved %d elements, want 5", n)
	}
	want := []int{1, 1, 2, 3, 4, 5}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestMoveOverlapBackward(t *testing.T) {
	buf := []int{0, 1, 2, 3, 4, 5}
	memops.Move(buf[0:5], buf[1:6])
	want := []int{1, 2, 3, 4, 5, 5}
	for i, v := range want {
		if buf[i] != v {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}
}

func TestHasPointersTrivialTypes(t *testing.T) {
	type pod struct {
		A int32
		B [4]float64
		C [2]struct{ X, Y uint16 }
	}
	if memops.HasPointers[byte]() || memops.HasPointers[pod]() {
		t.Error("pointer-free types reported as pointerful")
	}
	if memops.HasPointers[uintptr]() {
		t.Error("uintptr carries no GC reference")
	}
}

func TestHasPointersReferenceTypes(t *testing.T) {
	type boxed struct {
		N    int
		Name string
	}
	type deep struct {
		Inner [3]boxed
	}
	for name, got := range map[string]bool{
		"string":         memops.HasPointers[string](),
		"*int":           memops.HasPointers[*int](),
		"[]byte":         memops.HasPointers[[]byte](),
		"map":            memops.HasPointers[map[int]int](),
		"unsafe.Pointer": memops.HasPointers[unsafe.Pointer](),
		"nested struct":  memops.HasPointers[deep](),
		"any":            memops.HasPointers[any](),
	} {
		if !got {
			t.Errorf("%s must be reported as pointerful", name)
		}
	}
}
