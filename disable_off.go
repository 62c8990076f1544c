//go:build !arenadebug

package bumpalloc

type debugState struct{}

func (a *Arena) assertCanAlloc() {}

// DisableGuard re-enables allocation when ended. Without the arenadebug
// build tag it carries no state and End is a no-op.
type DisableGuard struct{}

// Disable forbids allocation on the arena until the returned guard ends.
// The check only runs under the arenadebug build tag; this build compiles
// it away.
func (a *Arena) Disable() DisableGuard {
	return DisableGuard{}
}

// End re-enables allocation.
func (DisableGuard) End() {}
