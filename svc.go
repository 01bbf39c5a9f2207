package rtxcore

import "log"

// SVCHandler is the supervisor-call exception handler, installed at
// vector offset 0x2C. hwFrameTop is R12 on entry — the top of the
// caller's basic frame on PSP — and excReturn is LR on entry. It
// returns the EXC_RETURN value to use for the actual exception return.
func (c *Core) SVCHandler(hwFrameTop uint32, excReturn uint32) uint32 {
	frame := readBasicFrame(c.bus, hwFrameTop)
	n := svcImmediate(c.bus, frame.PC)

	if n == 0 {
		return c.svcClassA(frame, hwFrameTop, excReturn)
	}
	return c.svcClassB(frame, hwFrameTop, excReturn, n)
}

// svcClassA handles "SVC #0": invoke the kernel service named by R12
// with R0..R3, write the result back into R0/R1, then fall into the
// context-switch tail.
func (c *Core) svcClassA(frame BasicFrame, hwFrameTop, excReturn uint32) uint32 {
	if fn, ok := c.KernelServices[frame.R12]; ok {
		r0, r1 := fn(frame.R0, frame.R1, frame.R2, frame.R3)
		writeBackResultPair(c.bus, hwFrameTop, r0, r1)
	} else {
		log.Printf("rtxcore: SVC #0 with unresolved service pointer %#x", frame.R12)
	}
	return c.switchTail(hwFrameTop, excReturn)
}

// svcClassB handles "SVC #n", n > 0: dispatch into the user SVC table.
// Numbers outside [1, N] are ignored and the caller's registers are left
// unchanged; user SVCs never reschedule.
func (c *Core) svcClassB(frame BasicFrame, hwFrameTop, excReturn uint32, n uint8) uint32 {
	if result, ok := dispatchUserSVC(c.userSVC, n, frame.R0, frame.R1, frame.R2, frame.R3); ok {
		writeBackResult(c.bus, hwFrameTop, result)
	}
	c.PSP = hwFrameTop
	return excReturn
}
