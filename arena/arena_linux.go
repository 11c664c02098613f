// File: arena/arena_linux.go
//go:build linux

// Package arena: Linux regions come from anonymous private mmap, with a
// hugepage (2 MiB) attempt for large classes. Heap fallback when the
// kernel refuses either mapping.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import "golang.org/x/sys/unix"

const hugeSize = 2 << 20

// osAlloc maps or allocates a region of exactly sz bytes. The second
// result reports whether the region is an OS mapping (and must be
// munmapped) or plain heap memory.
func osAlloc(sz int) ([]byte, bool) {
	if sz >= hugeSize {
		rounded := ((sz + hugeSize - 1) / hugeSize) * hugeSize
		data, err := unix.Mmap(-1, 0, rounded,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
		if err == nil {
			return data[:sz], true
		}
	}
	data, err := unix.Mmap(-1, 0, sz,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, sz), false
	}
	return data, true
}

// osFree returns mapped regions to the OS; heap regions are left to the GC.
func osFree(data []byte, mapped bool) {
	if mapped {
		_ = unix.Munmap(data[:cap(data)])
	}
}
