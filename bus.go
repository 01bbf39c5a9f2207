package rtxcore

// Bus provides word- and byte-addressed access to the memory the core
// operates over: thread stacks, TCBs, and the scheduler anchor all live
// in the same address space. A real port backs this with the MCU's
// actual RAM; tests back it with a flat byte slice.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, val uint32)
	ReadByte(addr uint32) byte
	WriteByte(addr uint32, val byte)
}
