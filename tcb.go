package rtxcore

import "unsafe"

// Thread is an opaque handle to a Thread Control Block: the address, in
// Bus memory, at which the TCB's fixed-offset fields live. The core
// never dereferences any field of a TCB other than the two declared
// below; everything else about a thread's layout belongs to the
// collaborator that created it.
//
// The zero value is the null thread: current becomes null once a
// thread's TCB has been torn down, with no stack left to save into.
type Thread uint32

const nullThread Thread = 0

// Fixed TCB field offsets, part of the ABI between this core and the
// RTOS that owns thread creation. The core reads and writes exactly
// these two fields and nothing else.
const (
	// SPOffset is the byte offset of the saved thread stack pointer.
	SPOffset = 56
	// StackFrameOffset is the byte offset of the 1-byte stack-frame tag.
	StackFrameOffset = 34
)

// tcbLayout documents the ABI this core is compiled against: a
// collaborator's real TCB struct must place `sp` and `stackFrame` at
// SPOffset/StackFrameOffset. The padding fields exist only so
// unsafe.Offsetof below can assert the contract at compile time; nothing
// in this package ever allocates a tcbLayout.
type tcbLayout struct {
	_pad0      [StackFrameOffset]byte
	stackFrame uint8
	_pad1      [SPOffset - StackFrameOffset - 1]byte
	sp         uint32
}

// Compile-time static assertions that the declared offsets agree with
// tcbLayout's actual layout. A TCB field drifting from these offsets
// would otherwise corrupt another thread's state the first time this
// core ran on it, so the offsets are checked at build time instead: a
// drift in either direction makes one of the constant subtractions below
// overflow uintptr and fails the build, not a silent runtime corruption.
var (
	_ = [unsafe.Offsetof(tcbLayout{}.stackFrame) - StackFrameOffset]struct{}{}
	_ = [StackFrameOffset - unsafe.Offsetof(tcbLayout{}.stackFrame)]struct{}{}
	_ = [unsafe.Offsetof(tcbLayout{}.sp) - SPOffset]struct{}{}
	_ = [SPOffset - unsafe.Offsetof(tcbLayout{}.sp)]struct{}{}
)

// sp reads the thread's saved stack pointer. Meaningful only while the
// thread is not the one currently running — its own live PSP is the
// real value, not whatever was last saved to its TCB.
func (t Thread) sp(bus Bus) uint32 {
	return bus.Read32(uint32(t) + SPOffset)
}

// setSP writes the thread's saved stack pointer.
func (t Thread) setSP(bus Bus, sp uint32) {
	bus.Write32(uint32(t)+SPOffset, sp)
}

// stackFrame reads the thread's 1-byte stack-frame tag: the low nibble
// mirrors EXC_RETURN's low nibble; bit 0x10 set means basic frame, clear
// means extended (FPU) frame.
func (t Thread) stackFrame(bus Bus) uint8 {
	return bus.ReadByte(uint32(t) + StackFrameOffset)
}

// setStackFrame writes the thread's stack-frame tag.
func (t Thread) setStackFrame(bus Bus, tag uint8) {
	bus.WriteByte(uint32(t)+StackFrameOffset, tag)
}
