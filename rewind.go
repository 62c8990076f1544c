package bumpalloc

// Checkpoint marks a position in the arena: a chain length and a bump
// offset within the chunk that was current when it was taken. Checkpoints
// are plain values; taking one costs nothing and holds no references.
//
// A checkpoint taken before any allocation rewinds the arena to its empty
// state. Reset, Release and rewinding to an earlier checkpoint invalidate
// it; rewinding to an invalidated checkpoint panics when the chain is
// visibly shorter than it records.
type Checkpoint struct {
	chunks int
	off    uintptr
}

// Checkpoint returns the arena's current position. Allocations made after
// the call are discarded by a matching Rewind.
func (a *Arena) Checkpoint() Checkpoint {
	cp := Checkpoint{chunks: len(a.chunks)}
	if a.cur != nil {
		cp.off = a.cur.off
	}
	return cp
}

// Rewind discards every allocation made since cp was taken. Chunks
// appended after the checkpoint are freed; the chunk that was current
// then becomes current again with its old offset. Slices and pointers
// handed out since the checkpoint must not be used afterwards.
func (a *Arena) Rewind(cp Checkpoint) {
	if cp.chunks > len(a.chunks) {
		panic("bumpalloc: rewind past released chunks")
	}
	if cp.chunks == 0 {
		a.Release()
		return
	}
	clearChunks(a.chunks[cp.chunks:])
	a.chunks = a.chunks[:cp.chunks]
	a.cur = &a.chunks[cp.chunks-1]
	a.cur.off = cp.off
}

// Scope runs fn and rewinds the arena to its position from before the
// call, even if fn panics. Allocations made inside fn are temporary and
// must not escape it.
func (a *Arena) Scope(fn func()) {
	cp := a.Checkpoint()
	defer a.Rewind(cp)
	fn()
}
