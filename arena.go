package bumpalloc

import "unsafe"

// DefaultChunkSize is the payload size of chunks appended when no single
// request needs more (4 KiB). Chunk bookkeeping lives outside the payload,
// so each default chunk is exactly one page-sized runtime allocation.
const DefaultChunkSize = 4096

// ptrAlign is the alignment used when no element type is known. It is
// sufficient for every Go scalar type.
const ptrAlign = int(unsafe.Alignof(uintptr(0)))

// chunk is one fixed-capacity block of arena memory. buf is never resized;
// when a chunk cannot satisfy a request the arena appends a fresh one.
type chunk struct {
	buf []byte  // backing memory
	off uintptr // allocation offset within buf
}

// alignedOffset returns the offset of the next align-aligned byte at or
// after the chunk's bump position. Alignment is computed on the absolute
// address, not the offset, because the chunk base itself is only as
// aligned as the runtime made it.
func (c *chunk) alignedOffset(align uintptr) uintptr {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	return (base+c.off+align-1)&^(align-1) - base
}

// Arena is a chunked bump allocator. Allocations advance an offset within
// the current chunk; exhausted chunks stay in the chain and a new one
// becomes current. Individual allocations are never reclaimed: memory
// comes back only through Rewind, Reset or Release, and no finalization
// of allocated values ever happens.
//
// An Arena is not safe for concurrent use. Use one arena per goroutine or
// wrap access in a SafeArena.
type Arena struct {
	chunks    []chunk
	cur       *chunk // cached &chunks[len(chunks)-1]; nil while empty
	chunkSize int

	debug debugState
}

// NewArena creates an arena that appends chunks of chunkSize payload
// bytes. If chunkSize <= 0, DefaultChunkSize is used. No memory is
// obtained until the first allocation.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// Allocate returns a slice of size bytes whose first byte is aligned to
// align (a power of two). The fast path bumps the current chunk's offset
// and touches no other state; when the chunk cannot fit the request a new
// one is appended first. Allocate never returns nil for size > 0: if the
// runtime cannot supply a chunk the process fails, there is no recovery
// path. Returns nil if size <= 0.
func (a *Arena) Allocate(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	checkAlign(align)
	a.assertCanAlloc()

	if c := a.cur; c != nil {
		off := c.alignedOffset(uintptr(align))
		if end := off + uintptr(size); end <= uintptr(len(c.buf)) {
			c.off = end
			return c.buf[off:end:end]
		}
	}
	return a.allocateSlow(size, align)
}

// allocateSlow appends a chunk sized for the request and retries, which
// cannot fail: the new chunk always has room for size bytes at any
// alignment the arena accepts.
//
//go:noinline
func (a *Arena) allocateSlow(size, align int) []byte {
	a.appendChunk(size, align)
	c := a.cur
	off := c.alignedOffset(uintptr(align))
	end := off + uintptr(size)
	c.off = end
	return c.buf[off:end:end]
}

// appendChunk links a fresh chunk and moves the cursor to it. Requests
// larger than the configured chunk size get an exactly-sized chunk plus
// alignment padding, so a single large allocation never spans chunks.
func (a *Arena) appendChunk(size, align int) {
	n := a.chunkSize
	if need := size + align; need > n {
		if need < size {
			panic("bumpalloc: allocation size out of range")
		}
		n = need
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, n)})
	a.cur = &a.chunks[len(a.chunks)-1]
}

// AllocBytes returns a slice of n bytes backed by the arena, aligned for
// any Go scalar. The caller must keep the arena reachable while the slice
// is in use. Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	return a.Allocate(n, ptrAlign)
}

// Free implements Allocator. A bump allocator cannot reclaim individual
// allocations, so the call is accepted and ignored; memory comes back
// only through Rewind, Reset or Release.
func (a *Arena) Free([]byte) {}

// EnsureCapacity makes sure the next n bytes fit the current chunk
// without appending, growing the chain up front if they would not.
func (a *Arena) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	a.assertCanAlloc()
	if c := a.cur; c != nil {
		if c.alignedOffset(uintptr(ptrAlign))+uintptr(n) <= uintptr(len(c.buf)) {
			return
		}
	}
	a.appendChunk(n, ptrAlign)
}

// Reset makes the arena's memory available for reuse. The first chunk is
// kept and its offset zeroed; chunks appended beyond it are released.
// Outstanding Checkpoints become invalid.
func (a *Arena) Reset() {
	if len(a.chunks) == 0 {
		return
	}
	clearChunks(a.chunks[1:])
	a.chunks = a.chunks[:1]
	a.cur = &a.chunks[0]
	a.cur.off = 0
}

// Release frees every chunk in the chain and returns the arena to its
// initial empty state. It tolerates an arena that never allocated, is
// safe to call repeatedly, and the arena remains usable afterwards.
func (a *Arena) Release() {
	a.chunks = nil
	a.cur = nil
}

// clearChunks drops the buffer references of released chunks so their
// backing arrays become collectible even while the chunks slice's own
// backing array is retained.
func clearChunks(tail []chunk) {
	for i := range tail {
		tail[i] = chunk{}
	}
}

func checkAlign(align int) {
	if align <= 0 || align&(align-1) != 0 {
		panic("bumpalloc: alignment must be a power of two")
	}
}
