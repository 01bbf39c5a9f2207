package rtxcore

import "testing"

// TestSandboxMaskingCriticalSection checks that when SandboxMasking is
// set, the publish+restore window (during which the thread-switch
// helper hook runs) is masked, and that the mask is released once the
// switch tail returns.
func TestSandboxMaskingCriticalSection(t *testing.T) {
	bus := &testBus{}
	anchor := NewAnchor(testAnchorBase)
	t1 := Thread(testThreadAOff)
	t2 := Thread(testThreadBOff)
	t2.setSP(bus, testStackBBase)
	t2.setStackFrame(bus, uint8(excReturnBasic&0xFF))

	bus.Write32(testAnchorBase+anchorCurrentOffset, uint32(t1))
	bus.Write32(testAnchorBase+anchorNextOffset, uint32(t2))

	var ran, maskedDuringHelper bool
	core := NewCore(bus, anchor, nil, nil, nil, nil, false)
	core.SandboxMasking = true
	core.threadSwitch = func() {
		ran = true
		maskedDuringHelper = core.Masked()
	}
	core.switchTail(testStackABase, excReturnBasic)

	if !ran {
		t.Fatal("helper did not run")
	}
	if !maskedDuringHelper {
		t.Error("helper must run inside the masked critical section when SandboxMasking is set")
	}
	if core.Masked() {
		t.Error("Masked() must be false after the switch tail returns")
	}
}

func TestLinked(t *testing.T) {
	if !Linked() {
		t.Error("Linked should always report true")
	}
	if LibraryMarker == 0 {
		t.Error("LibraryMarker should be a fixed non-zero sentinel")
	}
}
