package rtxcore

// PendSVHandler is the PendSV exception handler, installed at vector
// offset 0x38. PendSV exists so a context switch requested from
// interrupt context doesn't run the switch tail on top of whatever
// priority that interrupt had: it defers the switch to its own
// exception, calls the policy collaborator to elect `next`, then falls
// into the shared switch tail with hwFrameTop = PSP.
//
// PendSV must be configured at the lowest exception priority in the
// vector table so it tail-chains after every other interrupt and never
// preempts a policy collaborator's own critical section; this core has
// no way to enforce that itself, since NVIC priority configuration is
// board bring-up, done once at startup outside this package.
func (c *Core) PendSVHandler(hwFrameTop uint32, excReturn uint32) uint32 {
	// The reference kernel pushes {R4, LR} before calling the policy
	// hook and pops them after, even though R4 is already callee-saved
	// by the calling convention the hook runs under. Preserved here as a
	// documented no-op for strict behavioral parity rather than silently
	// dropped.
	if c.pendSV != nil {
		c.pendSV()
	}
	return c.switchTail(hwFrameTop, excReturn)
}
