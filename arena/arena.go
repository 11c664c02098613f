// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-classed allocator for raw, unmanaged memory regions. Arenas back
// view.FromRaw: the collector never scans them, so only pointer-free
// element types may live inside (the view constructor enforces this).
// Released arenas park on a per-class free list for reuse.

package arena

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/eapache/queue"

	"github.com/momentics/memview/api"
)

// Predefined (power-of-two) arena size classes (bytes).
var sizeClasses = [...]int{
	4 * 1024,        // 4K
	16 * 1024,       // 16K
	64 * 1024,       // 64K
	256 * 1024,      // 256K
	1 * 1024 * 1024, // 1M
}

// sizeClassUpperBound returns the smallest class >= size, or 0 when the
// request is larger than every class (allocated exactly, never pooled).
func sizeClassUpperBound(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return 0
}

// Arena is one contiguous raw region. Views over an arena must be dropped
// before Release; after Release the region may be reused or unmapped.
type Arena struct {
	data     []byte
	mapped   bool
	class    int
	alloc    *Allocator
	released bool
}

// Pointer returns the region's base address.
func (a *Arena) Pointer() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(a.data))
}

// Size returns the region length in bytes.
func (a *Arena) Size() int {
	return len(a.data)
}

// Bytes exposes the raw region for byte-level interop.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Release returns the arena to its allocator. Releasing twice is a no-op;
// using the arena or any view over it after Release is a caller bug.
func (a *Arena) Release() {
	if a.released || a.alloc == nil {
		return
	}
	a.released = true
	a.alloc.release(a)
}

// Count reports how many elements of type T fit in the arena.
func Count[T any](a *Arena) int {
	var zero T
	if sz := int(unsafe.Sizeof(zero)); sz > 0 {
		return a.Size() / sz
	}
	return 0
}

// Stats aggregates allocation counters across all size classes.
type Stats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}

// Allocator hands out arenas by size class and recycles released ones.
type Allocator struct {
	mu      sync.RWMutex
	classes map[int]*classPool

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewAllocator creates an allocator with empty free lists.
func NewAllocator() *Allocator {
	return &Allocator{classes: make(map[int]*classPool)}
}

// classPool recycles arenas of one size class. The FIFO keeps reuse order
// stable; churn is low enough that a mutex-guarded queue beats the
// bookkeeping of anything lock-free here.
type classPool struct {
	mu   sync.Mutex
	size int
	free *queue.Queue
}

func (p *classPool) pop() *Arena {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.free.Length() == 0 {
		return nil
	}
	return p.free.Remove().(*Arena)
}

func (p *classPool) push(a *Arena) {
	p.mu.Lock()
	p.free.Add(a)
	p.mu.Unlock()
}

// Acquire returns an arena of at least size bytes, reusing a released one
// when the class free list has any.
func (m *Allocator) Acquire(size int) (*Arena, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeOutOfRange,
			"arena size must be positive").
			WithContext("size", size)
	}
	class := sizeClassUpperBound(size)
	if class == 0 {
		// Oversize: exact allocation, never pooled.
		data, mapped := osAlloc(size)
		m.totalAlloc.Add(1)
		return &Arena{data: data, mapped: mapped, alloc: m}, nil
	}
	pool := m.getOrCreatePool(class)
	if a := pool.pop(); a != nil {
		a.released = false
		m.totalAlloc.Add(1)
		return a, nil
	}
	data, mapped := osAlloc(pool.size)
	m.totalAlloc.Add(1)
	return &Arena{data: data, mapped: mapped, class: class, alloc: m}, nil
}

// getOrCreatePool returns the pool for a class, lazily allocating on first use.
func (m *Allocator) getOrCreatePool(class int) *classPool {
	m.mu.RLock()
	pool, ok := m.classes[class]
	m.mu.RUnlock()
	if ok {
		return pool
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if pool, ok = m.classes[class]; ok {
		return pool
	}
	pool = &classPool{size: class, free: queue.New()}
	m.classes[class] = pool
	return pool
}

func (m *Allocator) release(a *Arena) {
	m.totalFree.Add(1)
	if a.class == 0 {
		osFree(a.data, a.mapped)
		return
	}
	m.getOrCreatePool(a.class).push(a)
}

// Stats returns cumulative counters. InUse is acquisitions minus releases.
func (m *Allocator) Stats() Stats {
	alloc := m.totalAlloc.Load()
	free := m.totalFree.Load()
	return Stats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}
