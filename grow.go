package bumpalloc

import "unsafe"

// TryGrow extends b to newSize bytes without moving it. Growth succeeds
// only when b is the most recent allocation in the current chunk (its
// last byte sits at the bump position) and the chunk has room for the
// extra bytes; the arena then advances its offset and returns the longer
// slice. On failure the arena is untouched, b is returned unchanged, and
// the caller falls back to allocating fresh memory.
func (a *Arena) TryGrow(b []byte, newSize int) ([]byte, bool) {
	a.assertCanAlloc()
	c := a.cur
	if c == nil || len(b) == 0 || newSize <= len(b) {
		return b, false
	}

	bBase := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	cBase := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	if bBase < cBase || bBase > cBase+uintptr(len(c.buf)) {
		return b, false
	}
	start := bBase - cBase
	if start+uintptr(len(b)) != c.off {
		return b, false
	}
	if uintptr(newSize) > uintptr(len(c.buf))-start {
		return b, false
	}
	end := start + uintptr(newSize)
	c.off = end
	return c.buf[start:end:end], true
}

// TryGrowSlice extends s's capacity to newCap elements without moving the
// data, by applying TryGrow to s's backing array. On success the returned
// slice keeps s's length and has the new capacity. Zero-sized element
// types never grow in place; their slices own no arena bytes.
func TryGrowSlice[T any](a *Arena, s []T, newCap int) ([]T, bool) {
	if cap(s) == 0 || newCap <= cap(s) {
		return s, false
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return s, false
	}
	total := elemSize * uintptr(newCap)
	if total/elemSize != uintptr(newCap) || total > uintptr(maxInt) {
		return s, false
	}
	old := s[:cap(s)]
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(old))), int(elemSize)*cap(s))
	if _, ok := a.TryGrow(b, int(total)); !ok {
		return s, false
	}
	return unsafe.Slice(unsafe.SliceData(old), newCap)[:len(s)], true
}
