package rtxcore

import "testing"

// TestSVCClassA checks SVC #0 argument marshaling: a call with
// R0..R3=(1,2,3,4) and R12 naming a service that returns (7,9) leaves
// the caller observing R0=7, R1=9 on return.
func TestSVCClassA(t *testing.T) {
	bus := &testBus{}
	anchor := NewAnchor(testAnchorBase)
	th := Thread(testThreadAOff)
	bus.Write32(testAnchorBase+anchorCurrentOffset, uint32(th))
	bus.Write32(testAnchorBase+anchorNextOffset, uint32(th)) // no-op switch

	core := NewCore(bus, anchor, nil, nil, nil, nil, false)
	const servicePtr = 0x0800_1000
	core.KernelServices[servicePtr] = func(a, b, c, d uint32) (uint32, uint32) {
		if a != 1 || b != 2 || c != 3 || d != 4 {
			t.Fatalf("service args = (%d,%d,%d,%d), want (1,2,3,4)", a, b, c, d)
		}
		return 7, 9
	}

	frame := BasicFrame{R0: 1, R1: 2, R2: 3, R3: 4, R12: servicePtr, PC: testStackABase + 100}
	top := pushBasicFrame(bus, testStackABase, frame)
	// SVC #0's immediate lives two bytes below the saved return PC.
	bus.WriteByte(frame.PC-2, 0)

	core.SVCHandler(top, excReturnBasic)

	r0 := bus.Read32(top + frameR0*wordSize)
	r1 := bus.Read32(top + frameR1*wordSize)
	if r0 != 7 || r1 != 9 {
		t.Errorf("R0,R1 = %d,%d want 7,9", r0, r1)
	}
}

// TestSVCClassBBounds checks that an out-of-range user SVC number
// invokes no table entry and leaves the caller's saved R0 unchanged.
func TestSVCClassBBounds(t *testing.T) {
	bus := &testBus{}
	anchor := NewAnchor(testAnchorBase)
	th := Thread(testThreadAOff)
	bus.Write32(testAnchorBase+anchorCurrentOffset, uint32(th))
	bus.Write32(testAnchorBase+anchorNextOffset, uint32(th))

	called := false
	table := NewTable(
		func(a, b, c, d uint32) uint32 { called = true; return 0xAAAA },
		func(a, b, c, d uint32) uint32 { called = true; return 0xBBBB },
		func(a, b, c, d uint32) uint32 { called = true; return 0xCCCC },
	)

	core := NewCore(bus, anchor, table, nil, nil, nil, false)

	frame := BasicFrame{R0: 0x1111, R1: 0x2222, R2: 0x3333, R3: 0x4444, PC: testStackABase + 100}
	top := pushBasicFrame(bus, testStackABase, frame)
	bus.WriteByte(frame.PC-2, 5) // SVC #5, table only has 3 entries

	core.SVCHandler(top, excReturnBasic)

	if called {
		t.Error("out-of-range user SVC must not invoke any table entry")
	}
	if got := bus.Read32(top + frameR0*wordSize); got != frame.R0 {
		t.Errorf("R0 = %#x, want unchanged %#x", got, frame.R0)
	}
}

// TestSVCClassBInRange exercises the complementary in-range case: the
// table entry runs and R0 is written back, with no rescheduling.
func TestSVCClassBInRange(t *testing.T) {
	bus := &testBus{}
	anchor := NewAnchor(testAnchorBase)
	t1 := Thread(testThreadAOff)
	t2 := Thread(testThreadBOff)
	// current != next: if Class B incorrectly ran the switch tail, T1's
	// frame would be silently mutated below the stack top.
	bus.Write32(testAnchorBase+anchorCurrentOffset, uint32(t1))
	bus.Write32(testAnchorBase+anchorNextOffset, uint32(t2))

	table := NewTable(
		func(a, b, c, d uint32) uint32 { return a + b + c + d },
	)
	core := NewCore(bus, anchor, table, nil, nil, nil, false)

	frame := BasicFrame{R0: 1, R1: 2, R2: 3, R3: 4, PC: testStackABase + 100}
	top := pushBasicFrame(bus, testStackABase, frame)
	bus.WriteByte(frame.PC-2, 1)

	core.SVCHandler(top, excReturnBasic)

	if got := bus.Read32(top + frameR0*wordSize); got != 10 {
		t.Errorf("R0 = %d, want 10", got)
	}
	if core.PSP != top {
		t.Errorf("PSP = %#x, want unchanged %#x (no reschedule on user SVC)", core.PSP, top)
	}
	// current must be untouched — user SVCs never reschedule.
	gotCurrent, _ := anchor.Load(bus)
	if gotCurrent != t1 {
		t.Errorf("anchor.current = %v, want unchanged %v", gotCurrent, t1)
	}
}
