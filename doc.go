// Package rtxcore models the exception-driven core of a preemptive
// real-time kernel for a 32-bit ARM Cortex-M4F: the SVC dispatcher, the
// PendSV and SysTick trampolines, and the context-switch tail they all
// funnel through.
//
// Real Cortex-M hardware runs this code in handler mode, directly
// manipulating banked stack pointers and the EXC_RETURN value in LR — no
// managed runtime can reach those. Core instead models the processor as
// a Bus-addressed memory space plus a small register file, and the three
// handlers as methods that read and write that memory the way the
// silicon would. A thread's "stack" is a region of Bus memory; its TCB
// is an opaque Thread handle at a fixed layout; everything else (thread
// creation, the scheduling policy, board bring-up) is a collaborator the
// core calls through but never owns.
package rtxcore
