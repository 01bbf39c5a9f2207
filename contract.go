package rtxcore

// Processor contract constants for the ARMv7E-M exception-return
// mechanism. These never change at runtime; they describe the hardware
// this core is written against.
const (
	// excReturnMask covers bits [31:8] of a valid EXC_RETURN value:
	// branching to any LR whose top 24 bits are all ones triggers an
	// exception return, with bits [7:0] selecting the return form.
	excReturnMask uint32 = 0xFFFFFF00

	// extendedFrameBit is bit 4 of EXC_RETURN / of a TCB stack_frame tag.
	// Clear (0) means an extended (FPU) frame; set (1) means a basic
	// frame. This mirrors the hardware encoding exactly, which reads
	// backwards from intuition — see frameIsExtended.
	extendedFrameBit uint8 = 0x10

	// fpccrAddr is the address of the FPU Context Control Register.
	// Modeled here as a symbolic constant only; Core.fpccr is the
	// simulated register this address would name on real hardware.
	fpccrAddr uint32 = 0xE000EF34

	// lspactBit is FPCCR's lazy-stacking-pending bit.
	lspactBit uint32 = 1 << 0

	// basicFrameWords is the hardware-pushed basic exception frame:
	// R0-R3, R12, LR, return PC, xPSR.
	basicFrameWords = 8

	// swSavedWordsBasic is R4-R11, saved/restored by the switch tail for
	// a thread with a basic frame.
	swSavedWordsBasic = 8

	// swSavedWordsExtended adds S16-S31 for a thread with an extended
	// (FPU) frame.
	swSavedWordsExtended = swSavedWordsBasic + 16
)

// wordSize is the width of one stack cell on this 32-bit target.
const wordSize = 4

// buildExcReturn rebuilds a full EXC_RETURN value from a TCB's 1-byte
// stack_frame tag: the top 24 bits are always the fixed exception-return
// pattern, so the tag alone is enough to reconstruct the value LR needs
// to hold for the hardware to unwind back into this thread.
func buildExcReturn(stackFrame uint8) uint32 {
	return excReturnMask | uint32(stackFrame)
}

// frameIsExtended reports whether an EXC_RETURN (or stack_frame tag)
// denotes an extended FPU frame. Bit 4 clear means extended.
func frameIsExtended(excReturn uint32) bool {
	return uint8(excReturn)&extendedFrameBit == 0
}
