package bumpalloc

// SizeInUse returns the total number of bytes currently allocated in the
// arena, alignment padding included.
func (a *Arena) SizeInUse() int {
	sum := 0
	for i := range a.chunks {
		sum += int(a.chunks[i].off)
	}
	return sum
}

// NumChunks returns the number of chunks in the arena's chain.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total payload capacity in bytes of all chunks.
func (a *Arena) Capacity() int {
	sum := 0
	for i := range a.chunks {
		sum += len(a.chunks[i].buf)
	}
	return sum
}

// RemainingInCurrentChunk returns how many bytes the current chunk can
// still hand out before the arena appends another one, ignoring any
// alignment padding the next request may need. It is 0 for an arena that
// has not allocated yet.
func (a *Arena) RemainingInCurrentChunk() int {
	if a.cur == nil {
		return 0
	}
	return len(a.cur.buf) - int(a.cur.off)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to
// 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the payload size of the chunks this arena appends.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // bytes currently allocated
	Capacity    int     // total capacity in bytes
	NumChunks   int     // number of chunks
	ChunkSize   int     // configured chunk payload size
	Utilization float64 // ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse returns the total number of bytes currently allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks returns the number of chunks in the chain.
func (s *SafeArena) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity returns the total payload capacity of all chunks.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// RemainingInCurrentChunk returns the current chunk's free bytes.
func (s *SafeArena) RemainingInCurrentChunk() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RemainingInCurrentChunk()
}

// Utilization returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// ChunkSize returns the configured chunk payload size.
func (s *SafeArena) ChunkSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ChunkSize()
}

// Metrics returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
