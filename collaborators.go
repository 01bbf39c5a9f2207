package rtxcore

// Collaborator contracts. Thread creation, scheduling policy, and the
// kernel's own service routines live in the RTOS proper, not in this
// core — the core only declares the shape it calls through, the way a
// C kernel declares extern prototypes for routines linked in elsewhere.

// KernelService is a Class-A ("SVC #0") kernel service function: the
// address the caller placed in R12. It receives R0..R3 and returns the
// values the SVC handler writes back into R0 and R1 before it enters the
// switch tail.
type KernelService func(r0, r1, r2, r3 uint32) (result0, result1 uint32)

// ThreadSwitchHelper is an advisory hook called once per context switch,
// after the outgoing thread's context has been saved and before the
// incoming thread's context is restored. It may clobber two scratch
// registers; it must not itself trigger an exception, and it must not
// be assumed to leave `next` unchanged — the core re-reads the anchor
// after calling it rather than trust a value that might now be stale.
type ThreadSwitchHelper func()

// PendSVPolicy selects the next runnable thread in response to a
// pended context switch, mutating the scheduler anchor's `next` field as
// a side effect. Scheduling policy belongs to the RTOS, not the core;
// the core only calls it.
type PendSVPolicy func()

// TickPolicy advances kernel time by one SysTick period and may update
// the scheduler anchor's `next` field as a side effect. Scheduling
// policy belongs to the RTOS, not the core; the core only calls it.
type TickPolicy func()
