package rtxcore

// SysTickHandler is the SysTick exception handler, installed at vector
// offset 0x3C. It delivers the periodic tick to the scheduler policy —
// which advances kernel time and may update `next` — then falls into
// the shared switch tail with hwFrameTop = PSP.
func (c *Core) SysTickHandler(hwFrameTop uint32, excReturn uint32) uint32 {
	// See PendSVHandler: the reference kernel's redundant {R4, LR}
	// push/pop around the policy hook is preserved in spirit (as a
	// documented no-op) rather than removed.
	if c.tick != nil {
		c.tick()
	}
	return c.switchTail(hwFrameTop, excReturn)
}
