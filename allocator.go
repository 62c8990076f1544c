package bumpalloc

import "unsafe"

// Allocator is the byte-level allocation contract shared by Arena and
// HeapAllocator. Allocate returns size bytes whose first byte is aligned
// to align, a power of two. Free hands b back to allocators that can
// reclaim individual allocations and is a no-op on those that cannot.
type Allocator interface {
	Allocate(size, align int) []byte
	Free(b []byte)
}

var (
	_ Allocator = (*Arena)(nil)
	_ Allocator = (*SafeArena)(nil)
	_ Allocator = HeapAllocator{}
)

// HeapAllocator satisfies Allocator with plain runtime allocations. Each
// Allocate is an independent make, so values live for as long as the
// caller keeps them and there is no bulk teardown. It serves as a drop-in
// where arena ownership is not wanted and as the baseline in benchmarks.
type HeapAllocator struct{}

// Heap is a ready-to-use HeapAllocator.
var Heap HeapAllocator

// Allocate returns size bytes aligned to align. The runtime already
// aligns small allocations generously, so the padded path is rarely
// taken. Returns nil if size <= 0.
func (HeapAllocator) Allocate(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	checkAlign(align)
	buf := make([]byte, size+align-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	aligned := (addr + uintptr(align) - 1) &^ uintptr(align-1)
	off := int(aligned - addr)
	return buf[off : off+size : off+size]
}

// Free lets the garbage collector reclaim b once the caller drops it.
func (HeapAllocator) Free([]byte) {}
