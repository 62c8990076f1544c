package bumpalloc

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent use.
// Every operation takes the lock, so allocations from different
// goroutines serialize. There is no Scope on SafeArena; take a
// Checkpoint and Rewind it explicitly, keeping in mind that the rewind
// discards allocations other goroutines made since the checkpoint too.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with the given chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// Allocate returns size bytes whose first byte is aligned to align.
func (s *SafeArena) Allocate(size, align int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size, align)
}

// AllocBytes allocates n bytes aligned for any Go scalar. Returns nil if
// n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Free implements Allocator; like Arena.Free it is accepted and ignored.
func (s *SafeArena) Free([]byte) {}

// EnsureCapacity makes sure the next n bytes fit the current chunk.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Checkpoint returns the arena's current position.
func (s *SafeArena) Checkpoint() Checkpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Checkpoint()
}

// Rewind discards every allocation made since cp was taken, no matter
// which goroutine made it.
func (s *SafeArena) Rewind(cp Checkpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Rewind(cp)
}

// Reset keeps the first chunk for reuse and releases the rest.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release frees every chunk and returns the arena to its initial state.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeAlloc returns a pointer to a zeroed T stored in the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocUninitialized returns a *T without clearing the bytes.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocCopy stores a copy of v in the arena and returns its address.
func SafeAllocCopy[T any](s *SafeArena, v T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocCopy(s.a, v)
}

// SafeAllocSlice allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed allocates a slice of n zeroed elements of type T.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafeAllocSliceCopy stores a copy of src in the arena.
func SafeAllocSliceCopy[T any](s *SafeArena, src []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceCopy(s.a, src)
}
