package rtxcore

// switchTail is the shared tail reached from SVC#0, PendSV, and SysTick:
// every path that may hand the processor to a different thread funnels
// through here. hwFrameTop is R12 on entry: the top of the caller
// thread's hardware-pushed frame on its PSP. excReturn is LR on entry.
// It returns the EXC_RETURN value the caller should use to perform the
// actual exception return, and leaves c.PSP set to the value PSP must
// be reloaded with.
func (c *Core) switchTail(hwFrameTop uint32, excReturn uint32) uint32 {
	current, next := c.anchor.Load(c.bus)

	// Nothing to do if the scheduler didn't actually pick a different
	// thread: leave the caller's own frame alone.
	if current == next {
		c.PSP = hwFrameTop
		return excReturn
	}

	// Save the outgoing thread's context, unless it has already been
	// deleted out from under us.
	if current == nullThread {
		// The thread is gone, so there's nowhere to save its context.
		// If it was running with an extended frame, the FPU may still
		// have a lazy-stacking operation pending against its stack;
		// with the thread (and its stack) gone, that write must never
		// happen, so LSPACT has to be cleared by hand.
		if c.FPUPresent && frameIsExtended(excReturn) {
			c.fpccr &^= lspactBit
		}
	} else {
		top := saveCalleeSaved(c.bus, hwFrameTop, c.Regs.R4_11)
		if c.FPUPresent && frameIsExtended(excReturn) {
			top = saveFPUHigh(c.bus, top, c.Regs.S16_31)
		}
		current.setSP(c.bus, top)
		current.setStackFrame(c.bus, uint8(excReturn))
	}

	// Publishing the new current thread and installing its PSP must not
	// be observed half-done by a preempting exception — a handler that
	// ran in between and read the anchor would see an inconsistent pair.
	// SandboxMasking wraps this window in a processor-wide interrupt
	// disable; otherwise the core relies on PendSV's lowest priority to
	// guarantee nothing preempts it here.
	c.enterMask()
	defer c.exitMask()

	if c.threadSwitch != nil {
		c.threadSwitch()
	}

	// Re-read next after the helper runs rather than reuse the value
	// loaded above: the helper is free to change its mind about which
	// thread runs next, and this must reflect whatever it lands on.
	_, next = c.anchor.Load(c.bus)
	c.anchor.Publish(c.bus, next)

	// Restore the incoming thread's context.
	newExcReturn := buildExcReturn(next.stackFrame(c.bus))
	top := next.sp(c.bus)
	if c.FPUPresent && frameIsExtended(newExcReturn) {
		c.Regs.S16_31, top = restoreFPUHigh(c.bus, top)
	}
	c.Regs.R4_11, top = restoreCalleeSaved(c.bus, top)
	c.PSP = top

	return newExcReturn
}
