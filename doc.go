// Package bumpalloc implements a chunked bump (arena) allocator.
//
// # Overview
//
// The arena obtains memory in chunks and hands out portions of the
// current chunk by advancing an offset. Individual values are never
// freed; whole regions are reclaimed at once with Rewind, Reset or
// Release. This is particularly useful for:
//
//   - Phase-scoped allocations (a parse, a request, a frame)
//   - Many small short-lived values with one batch cleanup
//   - Reducing garbage collector pressure
//
// # Basic Usage
//
//	a := bumpalloc.NewArena(0) // default chunk size
//	defer a.Release()
//
//	buf := a.AllocBytes(1024)
//
//	p := bumpalloc.Alloc[MyStruct](a)
//	s := bumpalloc.AllocSlice[int](a, 100)
//
//	a.Reset() // keep the first chunk, reuse the memory
//
// # Checkpoints and Rewinding
//
// A Checkpoint records the arena's position; Rewind returns to it,
// freeing chunks appended in between. Scope wraps the pair around a
// callback for temporary allocations:
//
//	cp := a.Checkpoint()
//	tmp := bumpalloc.AllocSlice[byte](a, 4096)
//	use(tmp)
//	a.Rewind(cp) // tmp's memory is reusable again
//
//	a.Scope(func() {
//		scratch := bumpalloc.AllocSlice[int](a, 512)
//		process(scratch)
//	})
//
// # Growing In Place
//
// The most recent allocation can grow without copying while its chunk
// has room. Append uses this to build slices incrementally:
//
//	s := bumpalloc.AllocSliceCopy(a, seed)
//	for _, v := range input {
//		s = bumpalloc.Append(a, s, v)
//	}
//
// # Thread Safety
//
// Arena is not safe for concurrent use. SafeArena wraps one behind a
// mutex:
//
//	sa := bumpalloc.NewSafeArena(0)
//	defer sa.Release()
//
//	buf := sa.AllocBytes(1024)
//	p := bumpalloc.SafeAlloc[MyStruct](sa)
//
// # Debug Checks
//
// Building with -tags arenadebug enables the Disable guard: allocating
// between Disable and the guard's End panics. Other builds compile the
// bookkeeping away.
//
//	g := a.Disable()
//	walk(tree) // must not allocate from a
//	g.End()
//
// # Metrics
//
// Metrics returns a snapshot of usage counters, and Collector exposes
// them to a Prometheus registry:
//
//	m := a.Metrics()
//	fmt.Printf("in use: %d of %d bytes\n", m.SizeInUse, m.Capacity)
//
//	reg.MustRegister(bumpalloc.NewCollector("parser", a.Metrics))
//
// # Caveats
//
// Chunks are untyped bytes, so the garbage collector does not scan
// values stored in them: a pointer held only inside arena memory does
// not keep its target alive. Store pointer-free types, or keep the
// referents reachable from outside the arena. Arena-allocated values
// stay valid only while their region does; a Rewind, Reset or Release
// frees them wholesale, and nothing is ever finalized.
package bumpalloc
