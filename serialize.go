package rtxcore

import (
	"encoding/binary"
	"errors"
)

// coreSerializeVersion is incremented whenever the binary layout changes.
const coreSerializeVersion = 1

// coreSerializeSize is the number of bytes produced by Core.Serialize.
const coreSerializeSize = 111

// SerializeSize returns the number of bytes needed for Serialize.
func (c *Core) SerializeSize() int { return coreSerializeSize }

// Serialize writes the Core's non-memory state into buf, which must be
// at least SerializeSize() bytes: the live register file, PSP, the
// simulated FPCCR, the interrupt-mask nesting depth, and the two
// build-time flags. Bus contents, the anchor, the SVC table, and the
// collaborator hooks are not included — this is a snapshot of what the
// hardware itself would hold mid-handler, not of the kernel's object
// graph.
func (c *Core) Serialize(buf []byte) error {
	if len(buf) < coreSerializeSize {
		return errors.New("rtxcore: serialize buffer too small")
	}

	buf[0] = coreSerializeVersion
	be := binary.BigEndian
	off := 1

	buf[off] = boolByte(c.FPUPresent)
	off++
	buf[off] = boolByte(c.SandboxMasking)
	off++

	be.PutUint32(buf[off:], c.PSP)
	off += 4
	be.PutUint32(buf[off:], c.fpccr)
	off += 4
	be.PutUint32(buf[off:], uint32(int32(c.maskLevel)))
	off += 4

	for _, v := range c.Regs.R4_11 {
		be.PutUint32(buf[off:], v)
		off += 4
	}
	for _, v := range c.Regs.S16_31 {
		be.PutUint32(buf[off:], v)
		off += 4
	}

	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Deserialize restores Core state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. Bus, anchor, SVC table, and collaborator
// hooks are left unchanged.
func (c *Core) Deserialize(buf []byte) error {
	if len(buf) < coreSerializeSize {
		return errors.New("rtxcore: deserialize buffer too small")
	}
	if buf[0] != coreSerializeVersion {
		return errors.New("rtxcore: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	c.FPUPresent = buf[off] != 0
	off++
	c.SandboxMasking = buf[off] != 0
	off++

	c.PSP = be.Uint32(buf[off:])
	off += 4
	c.fpccr = be.Uint32(buf[off:])
	off += 4
	c.maskLevel = int(int32(be.Uint32(buf[off:])))
	off += 4

	for i := range c.Regs.R4_11 {
		c.Regs.R4_11[i] = be.Uint32(buf[off:])
		off += 4
	}
	for i := range c.Regs.S16_31 {
		c.Regs.S16_31[i] = be.Uint32(buf[off:])
		off += 4
	}

	return nil
}
