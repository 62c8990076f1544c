//go:build arenadebug

package bumpalloc

// debugState carries the allocation-disabled counter. It exists only
// under the arenadebug build tag; other builds compile the checks away.
type debugState struct {
	disabled int
}

func (a *Arena) assertCanAlloc() {
	if a.debug.disabled > 0 {
		panic("bumpalloc: allocation while disabled")
	}
}

// DisableGuard re-enables allocation when ended. Guards nest: allocation
// is allowed again once every open guard has ended.
type DisableGuard struct {
	a *Arena
}

// Disable forbids allocation on the arena until the returned guard ends.
// With the arenadebug build tag, Allocate, EnsureCapacity and TryGrow
// panic while a guard is open; default builds carry no counter and never
// check. Use it to catch accidental allocation in sections that must not
// touch the arena.
func (a *Arena) Disable() DisableGuard {
	a.debug.disabled++
	return DisableGuard{a: a}
}

// End re-enables allocation. Ending a guard more times than Disable was
// called panics.
func (g DisableGuard) End() {
	if g.a == nil || g.a.debug.disabled <= 0 {
		panic("bumpalloc: DisableGuard ended twice")
	}
	g.a.debug.disabled--
}
