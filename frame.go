package rtxcore

// BasicFrame is the 8-word register image the Cortex-M hardware pushes
// on exception entry: R0-R3, R12, LR, return PC, xPSR, in ascending
// address order starting at the frame's base (the PSP value on entry).
type BasicFrame struct {
	R0, R1, R2, R3 uint32
	R12            uint32
	LR             uint32
	PC             uint32
	XPSR           uint32
}

// frame word indices, ascending from the base address.
const (
	frameR0 = iota
	frameR1
	frameR2
	frameR3
	frameR12
	frameLR
	framePC
	frameXPSR
)

// readBasicFrame loads the hardware-pushed register image from base
// (the PSP value at exception entry).
func readBasicFrame(bus Bus, base uint32) BasicFrame {
	word := func(i int) uint32 { return bus.Read32(base + uint32(i*wordSize)) }
	return BasicFrame{
		R0:   word(frameR0),
		R1:   word(frameR1),
		R2:   word(frameR2),
		R3:   word(frameR3),
		R12:  word(frameR12),
		LR:   word(frameLR),
		PC:   word(framePC),
		XPSR: word(frameXPSR),
	}
}

// writeBackResult overwrites R0 (and, for Class A calls, R1) in the
// hardware-pushed frame so the caller observes them on exception return:
// the hardware reloads R0-R3 from this frame, so a result only reaches
// the caller if it is patched in here before the exception return.
func writeBackResult(bus Bus, base uint32, r0 uint32) {
	bus.Write32(base+frameR0*wordSize, r0)
}

func writeBackResultPair(bus Bus, base uint32, r0, r1 uint32) {
	bus.Write32(base+frameR0*wordSize, r0)
	bus.Write32(base+frameR1*wordSize, r1)
}

// svcImmediate reads the SVC instruction's immediate operand. SVC is a
// 16-bit Thumb encoding with the immediate in its low byte, and the
// hardware-pushed PC points just past the instruction that caused the
// exception, so the opcode itself starts two bytes below the saved PC.
func svcImmediate(bus Bus, returnPC uint32) uint8 {
	return bus.ReadByte(returnPC - 2)
}

// saveCalleeSaved predecrements top by swSavedWordsBasic words and
// stores regs[0..7] (R4..R11) there, returning the new top. The
// hardware frame only covers R0-R3/R12/LR/PC/xPSR; R4-R11 are the
// compiler's job to preserve across a call, so the context switch has
// to save them by hand before handing the stack to another thread.
func saveCalleeSaved(bus Bus, top uint32, regs [8]uint32) uint32 {
	top -= swSavedWordsBasic * wordSize
	for i, v := range regs {
		bus.Write32(top+uint32(i*wordSize), v)
	}
	return top
}

// restoreCalleeSaved post-increment-restores R4..R11 from top, returning
// the values and the new top — the mirror image of saveCalleeSaved,
// run when a thread is handed the processor again.
func restoreCalleeSaved(bus Bus, top uint32) (regs [8]uint32, newTop uint32) {
	for i := range regs {
		regs[i] = bus.Read32(top + uint32(i*wordSize))
	}
	return regs, top + swSavedWordsBasic*wordSize
}

// saveFPUHigh predecrements top by 16 words and stores S16..S31 there.
// The hardware's own extended frame already covers S0-S15 and FPSCR;
// S16-S31 are the upper FPU bank, left to software to save, and only
// need saving at all when the outgoing thread actually touched them.
func saveFPUHigh(bus Bus, top uint32, regs [16]uint32) uint32 {
	top -= 16 * wordSize
	for i, v := range regs {
		bus.Write32(top+uint32(i*wordSize), v)
	}
	return top
}

// restoreFPUHigh post-increment-restores S16..S31 from top.
func restoreFPUHigh(bus Bus, top uint32) (regs [16]uint32, newTop uint32) {
	for i := range regs {
		regs[i] = bus.Read32(top + uint32(i*wordSize))
	}
	return regs, top + 16*wordSize
}
