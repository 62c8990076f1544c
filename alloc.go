package bumpalloc

import "unsafe"

// zerobase is the shared backing address for zero-sized allocations, the
// same trick the runtime's allocator uses: every zero-byte request gets a
// valid non-nil pointer without consuming arena space.
var zerobase uintptr

// maxInt is the largest length a Go slice can have.
const maxInt = int(^uint(0) >> 1)

// Alloc returns a pointer to a zeroed T stored in the arena. The pointer
// stays valid until the region holding it is rewound or released. The
// arena never runs finalizers, so T should not own external resources.
func Alloc[T any](a *Arena) *T {
	p := AllocUninitialized[T](a)
	var zero T
	*p = zero
	return p
}

// AllocUninitialized returns a *T in the arena without clearing the
// underlying bytes. The contents are whatever the chunk held before;
// callers must fully initialize the value before reading it.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return (*T)(unsafe.Pointer(&zerobase))
	}
	b := a.Allocate(int(size), int(unsafe.Alignof(zero)))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocCopy stores a copy of v in the arena and returns its address.
func AllocCopy[T any](a *Arena, v T) *T {
	p := AllocUninitialized[T](a)
	*p = v
	return p
}

// AllocSlice returns a slice of n elements of type T backed by the arena,
// with len and cap both n. The elements are not cleared; use
// AllocSliceZeroed when stale chunk contents must not show through.
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&zerobase)), n)
	}
	total := elemSize * uintptr(n)
	if total/elemSize != uintptr(n) || total > uintptr(maxInt) {
		panic("bumpalloc: slice size out of range")
	}
	b := a.Allocate(int(total), int(unsafe.Alignof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed returns a slice of n zeroed elements of type T.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

// AllocSliceCopy stores a copy of src in the arena. The copy's length and
// capacity both equal len(src). Returns nil for an empty src.
func AllocSliceCopy[T any](a *Arena, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := AllocSlice[T](a, len(src))
	copy(dst, src)
	return dst
}

// Append appends elems to dst the way the built-in append does, except
// that any new backing array comes from the arena. When dst's array ends
// exactly at the arena frontier it is grown in place and nothing is
// copied; an abandoned array otherwise stays in its chunk until a rewind
// reclaims it.
func Append[T any](a *Arena, dst []T, elems ...T) []T {
	need := len(dst) + len(elems)
	if need <= cap(dst) {
		return append(dst, elems...)
	}
	newCap := max(2*cap(dst), need)
	if grown, ok := TryGrowSlice(a, dst, newCap); ok {
		return append(grown, elems...)
	}
	fresh := AllocSlice[T](a, newCap)[:len(dst)]
	copy(fresh, dst)
	return append(fresh, elems...)
}
