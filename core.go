package rtxcore

// RegisterFile holds the callee-saved registers live for whichever
// thread is currently running: R4-R11, and, for a thread with an
// extended (FPU) frame, S16-S31. These are exported so a test (or an
// embedding host) can set up a thread's live register state before
// invoking a handler and read it back afterward, mirroring how
// go-chip-m68k's tests poke CPU.reg directly via SetState.
type RegisterFile struct {
	R4_11  [8]uint32
	S16_31 [16]uint32
}

// Core is the exception-driven kernel core: the Cortex-M4F SVC
// dispatcher, PendSV and SysTick trampolines, and the context-switch
// tail they share. It holds no thread-management policy of its own —
// every scheduling decision is delegated to the collaborator hooks
// supplied at construction.
type Core struct {
	bus    Bus
	anchor Anchor

	userSVC      Table
	threadSwitch ThreadSwitchHelper
	pendSV       PendSVPolicy
	tick         TickPolicy

	// KernelServices resolves the function-pointer value a Class-A
	// ("SVC #0") caller places in R12 to the Go function it names.
	// Keys are addresses the collaborator and caller agree on; this
	// stands in for "R12 holds a code address, call it" on a target
	// where Go cannot call through a raw integer.
	KernelServices map[uint32]KernelService

	// FPUPresent is the build-time capability flag for whether the part
	// actually has an FPU: on an M4 without one, there is no extended
	// frame to save or restore and no LSPACT to clear, so ports built for
	// that variant omit all S-register handling and every thread's
	// stack_frame tag always has the basic-frame bit set.
	FPUPresent bool

	// SandboxMasking is the port flag that wraps the publish+restore
	// critical section in a processor-wide interrupt disable. Some ports
	// need this belt-and-braces guarantee on top of NVIC priority
	// ordering; when false, the core relies purely on PendSV's lowest
	// priority to keep the window uninterrupted.
	SandboxMasking bool

	// Regs is the live callee-saved register file of the thread
	// currently executing, saved into and restored from Bus memory by
	// the switch tail.
	Regs RegisterFile

	// PSP is the live Process Stack Pointer.
	PSP uint32

	// fpccr simulates the FPU Context Control Register at fpccrAddr:
	// only the LSPACT bit is modeled, since that is the only bit the
	// switch tail ever reads or writes.
	fpccr uint32

	// maskLevel counts nested interrupt-disable regions entered under
	// SandboxMasking; exposed via Masked for tests.
	maskLevel int
}

// NewCore builds a Core over bus, rooted at the given scheduler anchor,
// with the user SVC table and the three external collaborators the
// RTOS supplies — thread creation and scheduling policy live outside
// this core. fpuPresent fixes the build-time FPU capability flag for
// the lifetime of the Core.
func NewCore(bus Bus, anchor Anchor, userSVC Table, threadSwitch ThreadSwitchHelper, pendSV PendSVPolicy, tick TickPolicy, fpuPresent bool) *Core {
	return &Core{
		bus:            bus,
		anchor:         anchor,
		userSVC:        userSVC,
		threadSwitch:   threadSwitch,
		pendSV:         pendSV,
		tick:           tick,
		FPUPresent:     fpuPresent,
		KernelServices: make(map[uint32]KernelService),
	}
}

// Masked reports whether the core is currently inside a
// SandboxMasking-gated critical section. Exposed for tests asserting
// the publish+restore window is masked when the port flag is set.
func (c *Core) Masked() bool {
	return c.maskLevel > 0
}

// LSPACT reports the simulated FPCCR.LSPACT bit.
func (c *Core) LSPACT() bool {
	return c.fpccr&lspactBit != 0
}

func (c *Core) enterMask() {
	if c.SandboxMasking {
		c.maskLevel++
	}
}

func (c *Core) exitMask() {
	if c.SandboxMasking {
		c.maskLevel--
	}
}
